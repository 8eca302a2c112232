// Package assets holds the compiled-in pixel data for the games: sprite
// strips, fonts, the platformer's compressed tile table and its level map.
//
// Pixel bytes are SSD1306 columns: 8 vertical pixels, LSB on top. Multi-frame
// sprites are stored frame after frame with a fixed stride.
//
// Tiles are encoded with codec.MustEncode while the package initialises, so a
// byte outside TileAlphabet panics at start-up (and in go test), never inside
// the frame loop.
package assets

import (
	"github.com/vovakirdan/tiny-arcade/internal/codec"
)

// TileWidth is the width of one tile in columns. Tiles are one page high.
const TileWidth = 16

// Tile identifies one entry of the tile table.
type Tile uint8

// Tile kinds.
const (
	TileEmpty        Tile = iota
	TileLadder            // ladder top on a floor
	TileFinish            // flag in the top-right corner
	TileBricks            // floor bricks on odd pages
	TileLadderBricks      // bricks with the ladder running through
	TileCoverLeft         // low wall, open to the left
	TileCoverRight        // low wall, open to the right
	TileHealthLabel       // "HP" plus the start of the health bar
	TileHealthBar         // rest of the health bar
	TileWall              // level edge
	tileCount
)

var tileNames = [tileCount]string{
	"empty", "ladder", "finish", "bricks", "ladder-bricks",
	"cover-left", "cover-right", "health-label", "health-bar", "wall",
}

func (t Tile) String() string {
	if t >= tileCount {
		return "unknown"
	}
	return tileNames[t]
}

// TileAlphabet is the symbol table of the tile set, most frequent first.
var TileAlphabet = codec.MustAlphabet(
	0x00, 0x77, 0x70, 0x28, 0xFF, 0x78, 0x08, 0x55,
	0x18, 0x07, 0xF0, 0x50, 0x30, 0x40, 0x20,
)

// Raw tile bytes, TileWidth each.
var tileBytes = [tileCount][]byte{
	TileEmpty: make([]byte, TileWidth),
	TileLadder: {
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x55,
		0x55, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	TileFinish: {
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x50,
		0x50, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	TileBricks: {
		0x77, 0x07, 0x77, 0x77, 0x77, 0x70, 0x77, 0x77,
		0x77, 0x07, 0x77, 0x77, 0x77, 0x70, 0x77, 0x77,
	},
	TileLadderBricks: {
		0x77, 0x07, 0x77, 0x77, 0x00, 0x00, 0xFF, 0x55,
		0x55, 0xFF, 0x00, 0x00, 0x77, 0x77, 0x70, 0x77,
	},
	TileCoverLeft: {
		0x28, 0x28, 0x08, 0x78, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	TileCoverRight: {
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x78, 0x08, 0x28, 0x08,
	},
	TileHealthLabel: {
		0x00, 0x00, 0x00, 0x00, 0x70, 0x20, 0x70, 0x00,
		0x70, 0x30, 0x00, 0x70, 0x70, 0x70, 0x70, 0x70,
	},
	TileHealthBar: {
		0x70, 0x70, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	TileWall: {
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x70, 0x08, 0x08, 0x70,
	},
}

// TitleWidth is the width of the platformer title block.
const TitleWidth = 2 * TileWidth

var titleBytes = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x78, 0x28, 0x18, 0x00, 0x78, 0x40, 0x00,
	0x70, 0x28, 0x70, 0x00, 0x18, 0x70, 0x18, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

var (
	tiles [tileCount]codec.Block
	title codec.Block
)

func init() {
	for t, raw := range tileBytes {
		tiles[t] = TileAlphabet.MustEncode(raw)
	}
	title = TileAlphabet.MustEncode(titleBytes)
}

// TileBlock returns the encoded block of t.
func TileBlock(t Tile) codec.Block {
	return tiles[t]
}

// TitleBlock returns the encoded title block.
func TitleBlock() codec.Block {
	return title
}

// NamedBlock is a raw asset with its name, for size reports.
type NamedBlock struct {
	Name string
	Raw  []byte
}

// TileSet lists every compressed block in table order, title last.
func TileSet() []NamedBlock {
	out := make([]NamedBlock, 0, tileCount+1)
	for t, raw := range tileBytes {
		out = append(out, NamedBlock{Name: Tile(t).String(), Raw: raw})
	}
	return append(out, NamedBlock{Name: "title", Raw: titleBytes})
}
