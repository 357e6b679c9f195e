package desktop

import (
	"image/color"

	"github.com/vovakirdan/tetris2048/internal/core"
)

var (
	backgroundColor = color.RGBA{0x1a, 0x1b, 0x26, 0xff}
	wellColor       = color.RGBA{0x24, 0x28, 0x3b, 0xff}
	gridLineColor   = color.RGBA{0x2f, 0x33, 0x4d, 0xff}
	overflowColor   = color.RGBA{0x3b, 0x24, 0x2c, 0xff}
	ghostColor      = color.RGBA{0x8a, 0x8f, 0xa8, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb4}
	focusColor      = color.RGBA{0x5f, 0x00, 0xd7, 0xff}
)

// palette maps screen colors to RGB, roughly matching the terminal shell.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xc0, 0xca, 0xf5, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
}

func rgb(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
