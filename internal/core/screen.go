package core

import (
	"strings"
)

// PixelSource is a monochrome bitmap, such as the emulated panel.
type PixelSource interface {
	Width() int
	Height() int
	Pixel(x, y int) bool
}

// Half-block glyphs: one cell shows two vertically stacked pixels.
const (
	GlyphEmpty = ' '
	GlyphUpper = '▀'
	GlyphLower = '▄'
	GlyphFull  = '█'
)

// PixelsPerRow is the number of pixel rows one character row shows.
const PixelsPerRow = 2

// Screen is a 2D character buffer the panel is plotted into.
// It decouples the bitmap from the terminal: the platform decides how the
// resulting runes are coloured and framed.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
	s.Clear()
	return s
}

// NewScreenFor creates a screen large enough to plot src.
func NewScreenFor(src PixelSource) *Screen {
	return NewScreen(src.Width(), (src.Height()+PixelsPerRow-1)/PixelsPerRow)
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = r
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// Plot draws src with its top-left pixel at cell (x, y), two pixel rows
// per cell.
func (s *Screen) Plot(x, y int, src PixelSource) {
	rows := (src.Height() + PixelsPerRow - 1) / PixelsPerRow
	for cy := 0; cy < rows; cy++ {
		for px := 0; px < src.Width(); px++ {
			top := src.Pixel(px, cy*2)
			bottom := src.Pixel(px, cy*2+1)
			s.Set(x+px, y+cy, halfBlock(top, bottom))
		}
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return GlyphFull
	case top:
		return GlyphUpper
	case bottom:
		return GlyphLower
	default:
		return GlyphEmpty
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
