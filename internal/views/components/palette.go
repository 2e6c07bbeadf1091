package components

import "image/color"

var (
	ColorGreen     = color.NRGBA{R: 0x50, G: 0xbf, B: 0xab, A: 0xff}
	ColorDarkGreen = color.NRGBA{R: 0x2a, G: 0x7a, B: 0x6c, A: 0xff}
	ColorWhite     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorBlack     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

const (
	ResultTextSize = 72
	InputTextSize  = 26
)
