package draw

// Color is a terminal foreground color. The zero value means "unset".
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightCyan
	ColorBrightYellow
	colorCount
)

// ColorReset restores the default terminal attributes.
const ColorReset = "\033[0m"

var colorCodes = [colorCount]string{
	ColorNone:         ColorReset,
	ColorWhite:        "\033[97m",
	ColorGray:         "\033[90m",
	ColorRed:          "\033[31m",
	ColorGreen:        "\033[32m",
	ColorYellow:       "\033[33m",
	ColorBlue:         "\033[34m",
	ColorMagenta:      "\033[35m",
	ColorCyan:         "\033[36m",
	ColorBrightRed:    "\033[91m",
	ColorBrightCyan:   "\033[96m",
	ColorBrightYellow: "\033[93m",
}

// Code returns the ANSI escape sequence that selects the color.
func (c Color) Code() string {
	if c >= colorCount {
		return ColorReset
	}
	return colorCodes[c]
}
