package oled

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSequenceBytes(t *testing.T) {
	rec := NewRecorder(nil)
	NewDisplay(rec).Init()

	assert.Equal(t, []byte{0xAE, 0xD5, 0x80, 0xA8, 0x3F, 0x20, 0x00, 0xAF}, rec.Commands())
	assert.Empty(t, rec.Data())
}

func TestInitResetsController(t *testing.T) {
	c := NewController()
	d := NewDisplay(c)

	d.SendCommand(CmdInverse)
	require.True(t, c.Inverted())

	d.Init()
	assert.False(t, c.Inverted())
	assert.True(t, c.On())

	d.Shutdown()
	assert.False(t, c.On())
}

func TestRangeCommands(t *testing.T) {
	rec := NewRecorder(nil)
	d := NewDisplay(rec)

	d.SetColumnRange(10, 20)
	d.SetPageRange(2, 3)

	assert.Equal(t, []byte{0x21, 10, 20, 0x22, 2, 3}, rec.Commands())
}

func TestClampAddresses(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	rec := NewRecorder(nil)
	d := NewDisplay(rec, WithLogger(logger))

	d.SetColumnRange(-4, 200)
	d.SetPageRange(1, 9)

	assert.Equal(t, []byte{0x21, 0, 127, 0x22, 1, 7}, rec.Commands())
	assert.Contains(t, buf.String(), "display address clamped")
}

func TestHorizontalWrapInsideWindow(t *testing.T) {
	c := NewController()
	d := NewDisplay(c)
	d.Init()

	d.SetColumnRange(10, 12)
	d.SetPageRange(1, 2)
	d.SendPixels(1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, byte(2), c.Byte(1, 11))
	assert.Equal(t, byte(3), c.Byte(1, 12))
	assert.Equal(t, byte(4), c.Byte(2, 10))
	assert.Equal(t, byte(6), c.Byte(2, 12))
	// seventh byte wraps back to the window origin
	assert.Equal(t, byte(7), c.Byte(1, 10))
	assert.Equal(t, byte(0), c.Byte(1, 13))
}

func TestVerticalAddressing(t *testing.T) {
	c := NewController()
	d := NewDisplay(c)
	d.Init()

	d.SendCommand(CmdAddressingMode)
	d.SendCommand(ModeVertical)
	d.DrawBlock(3, 40, []byte{0xA, 0xB, 0xC, 0xD}, 2, 2)

	assert.Equal(t, byte(0xA), c.Byte(3, 40))
	assert.Equal(t, byte(0xB), c.Byte(4, 40))
	assert.Equal(t, byte(0xC), c.Byte(3, 41))
	assert.Equal(t, byte(0xD), c.Byte(4, 41))
}

func TestPageAddressingStopsAtEdge(t *testing.T) {
	c := NewController()
	d := NewDisplay(c)
	d.Init()

	d.SendCommand(CmdAddressingMode)
	d.SendCommand(ModePage)
	d.SendCommand(0xB3) // page 3
	d.SendCommand(0x0E) // column low nibble
	d.SendCommand(0x17) // column high nibble -> 126
	d.SendPixels(0x11, 0x22, 0x33)

	assert.Equal(t, byte(0x11), c.Byte(3, 126))
	assert.Equal(t, byte(0x33), c.Byte(3, 127))
	page, col := c.Cursor()
	assert.Equal(t, 3, page)
	assert.Equal(t, 127, col)
}

func TestPageCommandKeepsColumnPointer(t *testing.T) {
	c := NewController()
	d := NewDisplay(c)
	d.Init()

	d.SetColumnRange(20, 127)
	d.SetPageRange(0, 0)
	d.SendPixels(0xFF, 0xFF, 0xFF)

	d.SetPageRange(5, 5)
	d.SendPixel(0x81)

	assert.Equal(t, byte(0x81), c.Byte(5, 23))
	assert.Equal(t, byte(0x00), c.Byte(5, 20))
}

func TestDrawBlockAndPixels(t *testing.T) {
	c := NewController()
	d := NewDisplay(c)
	d.Init()
	d.Clear()

	d.DrawBlock(1, 0, []byte{0x01, 0x80}, 2, 1)

	assert.True(t, c.Pixel(0, 8))
	assert.False(t, c.Pixel(0, 9))
	assert.True(t, c.Pixel(1, 15))
	assert.False(t, c.Pixel(-1, 0))
	assert.False(t, c.Pixel(0, Height))

	d.SendCommand(CmdInverse)
	assert.False(t, c.Pixel(0, 8))
	assert.True(t, c.Pixel(0, 9))
}

func TestDrawBlockShortSource(t *testing.T) {
	rec := NewRecorder(nil)
	NewDisplay(rec).DrawBlock(0, 0, []byte{1, 2, 3}, 4, 2)
	assert.Equal(t, []byte{1, 2, 3}, rec.Data())
}

func TestClearBlanksFrame(t *testing.T) {
	c := NewController()
	d := NewDisplay(c)
	d.Init()
	d.Fill(0xFF, Width*Pages)
	d.Clear()

	var empty [Pages][Width]byte
	assert.Equal(t, empty, c.Frame())

	cmds, data := c.Stats()
	assert.Equal(t, len(InitSequence)+6, cmds)
	assert.Equal(t, 2*Width*Pages, data)
}

func TestControllerArgumentParsing(t *testing.T) {
	c := NewController()
	for _, b := range []byte{CmdContrast, 0xAF, CmdChargePump, 0x14, CmdComPins, 0x12} {
		c.WriteCommand(b)
	}
	// 0xAF and 0x14 were arguments, not commands
	assert.Equal(t, byte(0xAF), c.Contrast())
	assert.False(t, c.On())
}

func TestRecorderForwardsAndTraces(t *testing.T) {
	c := NewController()
	rec := NewRecorder(c)
	d := NewDisplay(rec)

	d.Init()
	require.True(t, c.On())

	rec.Clear()
	d.SetCursor(2, 5)
	d.SendPixel(0x42)

	assert.Equal(t, byte(0x42), c.Byte(2, 5))
	assert.Equal(t, "C:22 C:02 C:02 C:21 C:05 C:7f D:42", rec.Trace())
	assert.Equal(t, "D:ff", Op{Value: 0xFF}.String())
}
