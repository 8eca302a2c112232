package assets

// SpriteWidth is the width of a character frame.
const SpriteWidth = 5

// Sprite is a strip of equally wide frames.
type Sprite struct {
	Width int
	Data  []byte
}

// Frames returns the number of whole or partial frames in s.
func (s Sprite) Frames() int {
	return (len(s.Data) + s.Width - 1) / s.Width
}

// Frame returns frame i, wrapping around the strip. The last frame of a
// strip may be shorter than Width.
func (s Sprite) Frame(i int) []byte {
	n := s.Frames()
	i %= n
	if i < 0 {
		i += n
	}
	end := (i + 1) * s.Width
	if end > len(s.Data) {
		end = len(s.Data)
	}
	return s.Data[i*s.Width : end]
}

func single(b ...byte) Sprite { return Sprite{Width: len(b), Data: b} }

// Fighting game.
var (
	FighterStay   = single(0x80, 0x6C, 0x1E, 0x24, 0xC8)
	FighterWalk0  = single(0x00, 0xCC, 0x1E, 0xE4, 0x08)
	FighterWalk1  = single(0x00, 0x1C, 0xEE, 0x04, 0x08)
	FighterPunch  = single(0x80, 0x60, 0x1C, 0x2E, 0xC4, 0x04, 0x04)
	FighterKick   = single(0x10, 0x0E, 0xFC, 0x1C, 0x04, 0x02, 0x02)
	FighterHitted = single(0x9C, 0x4E, 0x1C, 0xE8, 0x00)

	EnemyStay   = single(0xC0, 0x2A, 0x1C, 0xEC, 0x00)
	EnemyPunch  = single(0x04, 0xC4, 0x26, 0x1C, 0x68, 0x80)
	EnemyHitted = single(0xC0, 0x20, 0x1C, 0x6E, 0x84, 0x08)

	EnemyFall = Sprite{Width: SpriteWidth, Data: []byte{
		0x20, 0x10, 0xF4, 0x38, 0x1C,
		0x20, 0x20, 0x40, 0x60, 0x70,
		0x80, 0x80, 0xC0, 0xC0, 0x80,
	}}
	FighterFall = Sprite{Width: SpriteWidth, Data: []byte{
		0x80, 0x70, 0x38, 0xD8, 0x08,
		0x80, 0xE0, 0x70, 0xF0, 0x10,
		0x80, 0xC0, 0xC0, 0x40, 0x80,
	}}

	Building0 = single(0xFF, 0xD5, 0xFF, 0xD5, 0xFF, 0x80)
	Building1 = single(0xFC, 0x54, 0x7C, 0x54, 0xFC, 0x80)
	Building2 = single(0x30, 0xC8, 0x20, 0x80)

	// StartText is the "beat" glyph on the fighting title screen.
	StartText = single(0x92, 0xFF, 0x0A, 0x00, 0xFE, 0x4B, 0x4A, 0xFE)
)

// Ground is the bottom pixel row of a street page.
const Ground = 0x80

// Skyline is one 128-column period of the fighting game's scrolling
// background.
var Skyline = buildSkyline()

func buildSkyline() [128]byte {
	var out [128]byte
	n := 0
	put := func(bs ...byte) {
		n += copy(out[n:], bs)
	}
	ground := func(count int) {
		for ; count > 0; count-- {
			put(Ground)
		}
	}

	put(Building2.Data...)
	put(Building0.Data...)
	put(Building0.Data...)
	put(Building1.Data...)
	ground(19)
	put(Building2.Data...)
	put(Building0.Data...)
	put(Building2.Data...)
	put(Building2.Data...)
	ground(8)
	put(Building1.Data...)
	put(Building2.Data...)
	ground(21)
	put(Building0.Data...)
	put(Building1.Data...)
	ground(18)
	return out
}

// Platformer. Each ladder frame is a top half followed by a bottom half.
var (
	ActorWalk = Sprite{Width: SpriteWidth, Data: []byte{
		0x80, 0x6E, 0x13, 0x26, 0xC2,
		0x00, 0xCE, 0x13, 0xE6, 0x02,
		0x00, 0x0E, 0xF3, 0x06, 0x02,
		0x00, 0xCE, 0x13, 0xE6, 0x02,
	}}
	ActorDefeat = Sprite{Width: SpriteWidth, Data: []byte{
		0x1A, 0xEC, 0x1C, 0x14, 0x60,
		0x38, 0xF0, 0x70, 0x30, 0x60,
		0x80, 0xC0, 0xC0, 0x80, 0x80,
	}}
	ActorHiding = single(0x80, 0xB0, 0x78, 0x2C, 0xD0)
	ActorLadder = Sprite{Width: SpriteWidth, Data: []byte{
		0x00, 0xFF, 0x55, 0x55, 0xBF, 0x00, 0xE6, 0x1F, 0x0A, 0xB1,
		0x00, 0x6F, 0x95, 0xD5, 0xBF, 0x00, 0xEC, 0x42, 0x47, 0xB9,
		0x00, 0x6F, 0xF5, 0xA5, 0x1B, 0x00, 0xEE, 0x51, 0x50, 0xFB,
		0x00, 0xC6, 0x29, 0x7D, 0x9B, 0x00, 0xFE, 0x54, 0x54, 0xFB,
	}}
	LadderSingle = single(0x00, 0xFF, 0x55, 0x55, 0xFF)
)

// WalkCycle is the number of ActorWalk frames used while moving.
const WalkCycle = 3

// LadderFrames is the number of two-page frames in ActorLadder.
const LadderFrames = 4

// Racing.
var (
	CarSide   = single(0x00, 0x70, 0xEC, 0xE6, 0xA7, 0x27, 0xA7, 0xE7, 0xE7, 0x7F, 0x66, 0x00)
	CarCenter = single(0x00, 0x78, 0xEE, 0xE7, 0xA7, 0x27, 0xA7, 0xE7, 0xEE, 0x78, 0x00, 0x00)
	CarCrash  = single(0x14, 0xD9, 0xDE, 0x26, 0xFA, 0xB3, 0x27, 0xF5, 0x7E, 0xDC, 0xCA, 0x10)

	// RoadEdge is one page of a road edge, top-right to bottom-left.
	RoadEdge = single(0x03, 0x0C, 0x30, 0xC0)

	// ScoreLabel is "SCORE", stored right to left.
	ScoreLabel = single(
		0x00, 0x28, 0x00, 0x58, 0x78, 0x00, 0x08, 0x78, 0x00,
		0x78, 0x78, 0x00, 0x48, 0x78, 0x00, 0x74, 0x5C,
	)

	// GoText is the racing title.
	GoText = single(
		0x3C, 0x42, 0x52, 0x34, 0x00,
		0x30, 0x48, 0x48, 0x30, 0x00,
		0x02, 0x51, 0x09, 0x06,
	)
)

// RoadLine holds the centre line patterns, low byte first.
var RoadLine = [4]uint16{0x334A, 0x6655, 0xCCAA, 0x99B5}

// Reverse returns b in reverse order in a new slice.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
