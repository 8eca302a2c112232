package assets

// Digit fonts, column bytes.
var (
	// SmallDigits is a 3x5 font on the top rows of a page.
	SmallDigits = [10][3]byte{
		{0x1F, 0x11, 0x1F},
		{0x12, 0x1F, 0x10},
		{0x1D, 0x15, 0x17},
		{0x11, 0x15, 0x1F},
		{0x07, 0x04, 0x1F},
		{0x17, 0x15, 0x1D},
		{0x1F, 0x15, 0x1D},
		{0x01, 0x1D, 0x03},
		{0x1F, 0x15, 0x1F},
		{0x17, 0x15, 0x1F},
	}

	// WideDigits is a 2x5 font on the middle rows of a page.
	WideDigits = [10][2]byte{
		{0x7C, 0x7C},
		{0x00, 0x7C},
		{0x74, 0x5C},
		{0x54, 0x7C},
		{0x1C, 0x78},
		{0x5C, 0x74},
		{0x78, 0x64},
		{0x64, 0x1C},
		{0x6C, 0x7C},
		{0x4C, 0x3C},
	}
)
