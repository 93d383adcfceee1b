package core

// Color is the foreground of a screen cell. The palette holds only what
// the boards draw with.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray

	// PaletteSize is the number of defined colors.
	PaletteSize
)

var ansi256 = [PaletteSize]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorWhite:        "7",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorGray:         "245",
}

// ANSI returns the 256-color code, or "" for the terminal default and
// unknown values.
func (c Color) ANSI() string {
	if c >= PaletteSize {
		return ""
	}
	return ansi256[c]
}
