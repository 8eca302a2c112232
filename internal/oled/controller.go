package oled

// Controller emulates the SSD1306 side of the bus: it parses the command
// stream, tracks the addressing window and stores pixel data in GDDRAM.
// It is what the terminal front-end and the tests look at.
type Controller struct {
	ram [Pages][Width]byte

	mode     byte
	colStart int
	colEnd   int
	pageLo   int
	pageHi   int
	col      int
	page     int

	on       bool
	inverted bool
	contrast byte

	// pending multi-byte command
	cmd  byte
	args [2]byte
	want int
	got  int

	commands int
	data     int
}

// NewController returns a controller in its power-on state.
func NewController() *Controller {
	c := &Controller{}
	c.Reset()
	return c
}

// Reset puts the controller into its power-on state. GDDRAM is not cleared,
// matching the real part.
func (c *Controller) Reset() {
	c.mode = ModePage
	c.colStart, c.colEnd = 0, Width-1
	c.pageLo, c.pageHi = 0, Pages-1
	c.col, c.page = 0, 0
	c.on = false
	c.inverted = false
	c.contrast = 0x7F
	c.want, c.got = 0, 0
}

// WriteCommand feeds one byte with the mode line low.
func (c *Controller) WriteCommand(b byte) {
	c.commands++

	if c.want > 0 {
		c.args[c.got] = b
		c.got++
		if c.got == c.want {
			c.want = 0
			c.apply(c.cmd, c.args[0], c.args[1])
		}
		return
	}

	switch {
	case b == CmdColumnRange, b == CmdPageRange:
		c.expect(b, 2)
	case b == CmdAddressingMode, b == CmdContrast, b == CmdChargePump,
		b == CmdMultiplex, b == CmdDisplayOffset, b == CmdClockDivider,
		b == CmdPrecharge, b == CmdComPins, b == CmdVcomDeselect:
		c.expect(b, 1)
	case b == CmdDisplayOff:
		c.on = false
	case b == CmdDisplayOn:
		c.on = true
	case b == CmdNormal:
		c.inverted = false
	case b == CmdInverse:
		c.inverted = true
	case b >= 0xB0 && b <= 0xB7:
		// page start, page addressing mode
		c.page = int(b - 0xB0)
	case b <= 0x0F:
		c.col = c.col&0xF0 | int(b)
	case b >= 0x10 && b <= 0x1F:
		c.col = c.col&0x0F | int(b&0x0F)<<4
	}
	// everything else (segment remap, COM scan, start line, ...) does not
	// change what the emulation stores
}

func (c *Controller) expect(cmd byte, n int) {
	c.cmd = cmd
	c.want = n
	c.got = 0
}

func (c *Controller) apply(cmd, a0, a1 byte) {
	switch cmd {
	case CmdAddressingMode:
		if a0 <= ModePage {
			c.mode = a0
		}
	case CmdColumnRange:
		c.colStart = int(a0) & (Width - 1)
		c.colEnd = int(a1) & (Width - 1)
		c.col = c.colStart
	case CmdPageRange:
		c.pageLo = int(a0) & (Pages - 1)
		c.pageHi = int(a1) & (Pages - 1)
		c.page = c.pageLo
	case CmdContrast:
		c.contrast = a0
	}
}

// WriteData stores one pixel byte and advances the pointer with auto-wrap.
func (c *Controller) WriteData(b byte) {
	c.data++
	c.ram[c.page&(Pages-1)][c.col&(Width-1)] = b

	switch c.mode {
	case ModeHorizontal:
		if c.col >= c.colEnd {
			c.col = c.colStart
			if c.page >= c.pageHi {
				c.page = c.pageLo
			} else {
				c.page++
			}
		} else {
			c.col++
		}
	case ModeVertical:
		if c.page >= c.pageHi {
			c.page = c.pageLo
			if c.col >= c.colEnd {
				c.col = c.colStart
			} else {
				c.col++
			}
		} else {
			c.page++
		}
	default:
		if c.col < Width-1 {
			c.col++
		}
	}
}

// On reports whether the panel is switched on.
func (c *Controller) On() bool {
	return c.on
}

// Inverted reports whether inverse video is selected.
func (c *Controller) Inverted() bool {
	return c.inverted
}

// Contrast returns the last contrast setting.
func (c *Controller) Contrast() byte {
	return c.contrast
}

// Cursor returns the current page and column pointers.
func (c *Controller) Cursor() (page, col int) {
	return c.page, c.col
}

// Page returns a copy of one page of GDDRAM.
func (c *Controller) Page(p int) []byte {
	out := make([]byte, Width)
	copy(out, c.ram[p&(Pages-1)][:])
	return out
}

// Byte returns the GDDRAM byte at (page, col).
func (c *Controller) Byte(page, col int) byte {
	return c.ram[page&(Pages-1)][col&(Width-1)]
}

// Pixel reports whether the pixel at (x, y) is lit, honouring inverse video.
// Out-of-panel coordinates are dark.
func (c *Controller) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	lit := c.ram[y/8][x]&(1<<(y%8)) != 0
	return lit != c.inverted
}

// Width returns the panel width in pixels.
func (c *Controller) Width() int {
	return Width
}

// Height returns the panel height in pixels.
func (c *Controller) Height() int {
	return Height
}

// Frame returns a copy of the whole GDDRAM.
func (c *Controller) Frame() [Pages][Width]byte {
	return c.ram
}

// Stats returns how many command and data bytes were received.
func (c *Controller) Stats() (commands, data int) {
	return c.commands, c.data
}
