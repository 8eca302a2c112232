// Package oled drives a 128x64 monochrome dot-matrix panel through the
// SSD1306 command/data protocol.
//
// The wire boundary is the Bus interface: one call per byte, with the mode
// line selecting command or pixel data. Nothing is ever read back. Display
// wraps a Bus with the handful of addressing helpers the games need, and
// Controller emulates the panel itself so the same byte stream can be shown
// in a terminal or checked in tests.
package oled

import (
	"github.com/charmbracelet/log"
)

// Panel geometry.
const (
	Width  = 128
	Height = 64
	Pages  = Height / 8
)

// SSD1306 command bytes used by the driver.
const (
	CmdAddressingMode = 0x20
	CmdColumnRange    = 0x21
	CmdPageRange      = 0x22
	CmdContrast       = 0x81
	CmdChargePump     = 0x8D
	CmdMultiplex      = 0xA8
	CmdDisplayOffset  = 0xD3
	CmdClockDivider   = 0xD5
	CmdPrecharge      = 0xD9
	CmdComPins        = 0xDA
	CmdVcomDeselect   = 0xDB
	CmdDisplayOff     = 0xAE
	CmdDisplayOn      = 0xAF
	CmdNormal         = 0xA6
	CmdInverse        = 0xA7
)

// Addressing modes accepted by CmdAddressingMode.
const (
	ModeHorizontal = 0x00
	ModeVertical   = 0x01
	ModePage       = 0x02
)

// InitSequence is the controller set-up issued after reset: display off,
// clock divider, multiplex ratio 64, horizontal addressing, display on.
var InitSequence = []byte{
	CmdDisplayOff,
	CmdClockDivider, 0x80,
	CmdMultiplex, 0x3F,
	CmdAddressingMode, ModeHorizontal,
	CmdDisplayOn,
}

// Bus is the byte transport to the panel. Implementations must deliver each
// byte before returning.
type Bus interface {
	WriteCommand(b byte)
	WriteData(b byte)
}

// Resetter is implemented by buses that control the panel reset line.
type Resetter interface {
	Reset()
}

// Display issues protocol sequences on a Bus. It keeps no framebuffer.
type Display struct {
	bus    Bus
	logger *log.Logger
}

// Option configures a Display.
type Option func(*Display)

// WithLogger reports clamped addresses at debug level.
func WithLogger(l *log.Logger) Option {
	return func(d *Display) {
		d.logger = l
	}
}

// NewDisplay creates a display driver on bus.
func NewDisplay(bus Bus, opts ...Option) *Display {
	d := &Display{bus: bus}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Bus returns the underlying transport.
func (d *Display) Bus() Bus {
	return d.bus
}

// Init pulses reset when the bus supports it and sends InitSequence.
func (d *Display) Init() {
	if r, ok := d.bus.(Resetter); ok {
		r.Reset()
	}
	for _, c := range InitSequence {
		d.bus.WriteCommand(c)
	}
}

// Shutdown turns the panel off. GDDRAM content is retained.
func (d *Display) Shutdown() {
	d.bus.WriteCommand(CmdDisplayOff)
}

// SendCommand sends one raw command byte.
func (d *Display) SendCommand(b byte) {
	d.bus.WriteCommand(b)
}

// SendPixel sends one byte of pixel data: 8 vertical pixels, LSB on top.
func (d *Display) SendPixel(b byte) {
	d.bus.WriteData(b)
}

// SendPixels streams pixel bytes into the current window.
func (d *Display) SendPixels(bs ...byte) {
	for _, b := range bs {
		d.bus.WriteData(b)
	}
}

// Fill streams n copies of b.
func (d *Display) Fill(b byte, n int) {
	for ; n > 0; n-- {
		d.bus.WriteData(b)
	}
}

// SetColumnRange sets the column window and moves the column pointer to start.
func (d *Display) SetColumnRange(start, end int) {
	s := d.clamp("column start", start, Width-1)
	e := d.clamp("column end", end, Width-1)
	d.bus.WriteCommand(CmdColumnRange)
	d.bus.WriteCommand(byte(s))
	d.bus.WriteCommand(byte(e))
}

// SetPageRange sets the page window and moves the page pointer to start.
// The column pointer is left where it was.
func (d *Display) SetPageRange(start, end int) {
	s := d.clamp("page start", start, Pages-1)
	e := d.clamp("page end", end, Pages-1)
	d.bus.WriteCommand(CmdPageRange)
	d.bus.WriteCommand(byte(s))
	d.bus.WriteCommand(byte(e))
}

// SetCursor opens a window from (col, page) to the right edge of that page.
func (d *Display) SetCursor(page, col int) {
	d.SetPageRange(page, page)
	d.SetColumnRange(col, Width-1)
}

// DrawBlock writes w*h bytes row-major into a w-column, h-page window.
func (d *Display) DrawBlock(page, col int, bytes []byte, w, h int) {
	d.SetColumnRange(col, col+w-1)
	d.SetPageRange(page, page+h-1)
	n := w * h
	if n > len(bytes) {
		n = len(bytes)
	}
	d.SendPixels(bytes[:n]...)
}

// Clear blanks the whole panel and leaves the window on the full screen.
func (d *Display) Clear() {
	d.SetColumnRange(0, Width-1)
	d.SetPageRange(0, Pages-1)
	d.Fill(0x00, Width*Pages)
}

// clamp keeps an address inside the panel.
func (d *Display) clamp(what string, v, max int) int {
	switch {
	case v < 0:
		d.report(what, v, 0)
		return 0
	case v > max:
		d.report(what, v, max)
		return max
	}
	return v
}

func (d *Display) report(what string, v, clamped int) {
	if d.logger != nil {
		d.logger.Debug("display address clamped", "field", what, "value", v, "clamped", clamped)
	}
}
