package ui

import (
	"image/color"

	"gioui.org/unit"
	"gioui.org/widget/material"
)

func NewTheme() *material.Theme {
	th := material.NewTheme()

	th.Palette.Bg = color.NRGBA{R: 0xF7, G: 0xF9, B: 0xF9, A: 0xFF}
	th.Palette.Fg = color.NRGBA{R: 0x1B, G: 0x1D, B: 0x1E, A: 0xFF}

	// Primary: Teal 700
	th.Palette.ContrastBg = color.NRGBA{R: 0x00, G: 0x79, B: 0x6B, A: 0xFF}
	th.Palette.ContrastFg = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	th.TextSize = unit.Sp(16)

	return th
}
