package core

// Color represents a foreground color for a lit pixel.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined pixel colors.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBlue
	ColorGreen
)

// ANSI returns the 256-color code for the color.
func (c Color) ANSI() string {
	switch c {
	case ColorYellow:
		return "220"
	case ColorCyan:
		return "45"
	case ColorWhite:
		return "255"
	case ColorBlue:
		return "33"
	case ColorGreen:
		return "82"
	default:
		return "252"
	}
}

// Palette assigns a pixel color per display page. Two-color panels have a
// yellow band on the top pages and blue below.
type Palette struct {
	Name  string
	Pages [8]Color
}

// Built-in palettes.
var (
	PaletteWhite   = Palette{Name: "white", Pages: [8]Color{ColorWhite, ColorWhite, ColorWhite, ColorWhite, ColorWhite, ColorWhite, ColorWhite, ColorWhite}}
	PaletteBlue    = Palette{Name: "blue", Pages: [8]Color{ColorCyan, ColorCyan, ColorCyan, ColorCyan, ColorCyan, ColorCyan, ColorCyan, ColorCyan}}
	PaletteTwoTone = Palette{Name: "twotone", Pages: [8]Color{ColorYellow, ColorYellow, ColorCyan, ColorCyan, ColorCyan, ColorCyan, ColorCyan, ColorCyan}}
)

// PaletteByName returns a built-in palette, falling back to white.
func PaletteByName(name string) Palette {
	switch name {
	case PaletteBlue.Name:
		return PaletteBlue
	case PaletteTwoTone.Name:
		return PaletteTwoTone
	default:
		return PaletteWhite
	}
}

// At returns the color of pixel row y.
func (p Palette) At(y int) Color {
	if y < 0 {
		y = 0
	}
	return p.Pages[(y/8)&7]
}
