package platformer

import (
	"github.com/vovakirdan/tiny-arcade/internal/assets"
	"github.com/vovakirdan/tiny-arcade/internal/codec"
	"github.com/vovakirdan/tiny-arcade/internal/engine"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
)

// hpLost is the health bar column pattern once a hit has been taken.
const hpLost = 0x50

// titleSlot is the tile slot, in screen order, where the title block starts.
const titleSlot = titlePage*assets.LevelCols + titleX/assets.TileWidth

// view is what Render has to put on the panel for the current frame. Lane
// fields hold a page number; floors are even pages from 2 up, so 0 means
// nothing to draw.
type view struct {
	title bool // title screen
	full  bool // whole level

	lane     int // player floor, redrawn with shots
	leftLane int // floor the player just climbed off

	actors bool
	player []byte
	enemy  []byte // current enemy pose

	hp  [engine.MaxShots]int
	nhp int

	climb      bool
	climbFrame int
	climbPage  int
	ladderPage int
	ladderX    int
}

// addHealth records a health value whose bar columns have to be cleared.
func (v *view) addHealth(hp int) {
	if v.nhp < len(v.hp) {
		v.hp[v.nhp] = hp
		v.nhp++
	}
}

// Render draws the current frame. Tiles are streamed straight out of the
// compressed table; shots are OR-ed into the player's floor on the way.
func (g *Game) Render(d *oled.Display) {
	v := &g.view

	if v.title {
		g.renderTitle(d)
		return
	}
	if v.full {
		g.renderLevel(d)
	}

	if v.leftLane != 0 {
		g.renderLane(d, v.leftLane)
	}
	if v.lane != 0 {
		g.renderLane(d, v.lane)
	}

	if v.actors {
		g.renderActors(d)
	}

	for i := 0; i < v.nhp; i++ {
		d.SetCursor(hpPage, hpX+v.hp[i])
		d.SendPixels(hpLost, hpLost)
	}

	if v.climb {
		frame := assets.ActorLadder.Frame(v.climbFrame * 2)
		bottom := assets.ActorLadder.Frame(v.climbFrame*2 + 1)
		g.sprite(d, v.climbPage-1, g.imgX, frame, g.player.Dir)
		g.sprite(d, v.climbPage, g.imgX, bottom, g.player.Dir)
	}
	if v.ladderPage != 0 {
		g.sprite(d, v.ladderPage, v.ladderX, assets.LadderSingle.Data, g.player.Dir)
	}
}

// renderTitle fills the screen with empty tiles around the title block.
func (g *Game) renderTitle(d *oled.Display) {
	d.SetColumnRange(0, oled.Width-1)
	d.SetPageRange(0, oled.Pages-1)

	empty := assets.TileBlock(assets.TileEmpty)
	slots := assets.LevelCols*assets.LevelPages - assets.TitleWidth/assets.TileWidth + 1
	for i := 0; i < slots; i++ {
		if i == titleSlot {
			g.stream(d, assets.TitleBlock(), -1, 0)
			continue
		}
		g.stream(d, empty, -1, 0)
	}
}

// renderLevel draws every tile of the map.
func (g *Game) renderLevel(d *oled.Display) {
	d.SetColumnRange(0, oled.Width-1)
	d.SetPageRange(0, oled.Pages-1)
	for p := 0; p < assets.LevelPages; p++ {
		for c := 0; c < assets.LevelCols; c++ {
			g.stream(d, assets.TileBlock(assets.Level[p][c].Tile), -1, 0)
		}
	}
}

// renderLane redraws one floor with the shots flying along it.
func (g *Game) renderLane(d *oled.Display, lane int) {
	d.SetCursor(lane, 0)
	for c := 0; c < assets.LevelCols; c++ {
		g.stream(d, assets.TileBlock(assets.Level[lane][c].Tile), lane, c*assets.TileWidth)
	}
}

// stream decodes blk to the display. With a non-negative lane every byte
// picks up the shot mask of its column, counting from x.
func (g *Game) stream(d *oled.Display, blk codec.Block, lane, x int) {
	if g.reader == nil {
		g.reader = assets.TileAlphabet.NewReader(blk)
	} else {
		g.reader.Reset(blk)
	}
	for {
		b, ok := g.reader.Next()
		if !ok {
			return
		}
		if lane >= 0 {
			b |= g.shots.Mask(x, lane, shotBits)
			x++
		}
		d.SendPixel(b)
	}
}

// renderActors draws the player, the enemies still standing and the
// current enemy's pose.
func (g *Game) renderActors(d *oled.Display) {
	g.sprite(d, g.player.Lane, g.imgX, g.view.player, g.player.Dir)

	g.roster.Each(func(e *engine.Entity, current bool) {
		img := assets.ActorWalk.Frame(0)
		if current && g.view.enemy != nil {
			img = g.view.enemy
		}
		g.sprite(d, e.Lane, e.X, img, e.Dir)
	})
}

// sprite draws one character, mirrored when it faces backward.
func (g *Game) sprite(d *oled.Display, page, x int, data []byte, dir engine.Direction) {
	d.SetCursor(page, x)
	if dir == engine.Backward {
		for i := len(data) - 1; i >= 0; i-- {
			d.SendPixel(data[i])
		}
		return
	}
	d.SendPixels(data...)
}
