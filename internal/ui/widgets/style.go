package widgets

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

var (
	ColorSuccess = color.NRGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF} // Green 800
	ColorError   = color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF} // Red 700
	ColorWarning = color.NRGBA{R: 0xED, G: 0x6C, B: 0x02, A: 0xFF} // Orange 800
	ColorSurface = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorBorder  = color.NRGBA{R: 0xDE, G: 0xE3, B: 0xE7, A: 0xFF}
	ColorDivider = color.NRGBA{R: 0xEC, G: 0xF1, B: 0xF3, A: 0xFF}
	ColorMuted   = color.NRGBA{R: 0x5F, G: 0x6E, B: 0x84, A: 0xFF}
)

type BannerTone int

const (
	BannerInfo BannerTone = iota
	BannerSuccess
	BannerWarning
	BannerError
)

func ConstrainMaxWidth(gtx layout.Context, max unit.Dp, w layout.Widget) layout.Dimensions {
	return layout.N.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		maxPx := gtx.Dp(max)
		if gtx.Constraints.Max.X > maxPx {
			gtx.Constraints.Max.X = maxPx
		}
		if gtx.Constraints.Min.X > gtx.Constraints.Max.X {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
		}
		return w(gtx)
	})
}

func CenterInAvailable(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Stack{Alignment: layout.Center}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Stacked(w),
	)
}

// Section is a bordered card, the container for a form group.
func Section(gtx layout.Context, bg color.NRGBA, w layout.Widget) layout.Dimensions {
	return Border(gtx, ColorBorder, func(gtx layout.Context) layout.Dimensions {
		return Card(gtx, bg, w)
	})
}

func Banner(gtx layout.Context, th *material.Theme, tone BannerTone, text string) layout.Dimensions {
	if text == "" {
		return layout.Dimensions{}
	}
	var (
		bg = color.NRGBA{R: 0xEE, G: 0xF3, B: 0xFF, A: 0xFF}
		fg = color.NRGBA{R: 0x1E, G: 0x40, B: 0xAF, A: 0xFF}
	)
	switch tone {
	case BannerSuccess:
		bg = color.NRGBA{R: 0xE8, G: 0xF5, B: 0xE9, A: 0xFF}
		fg = ColorSuccess
	case BannerWarning:
		bg = color.NRGBA{R: 0xFF, G: 0xF4, B: 0xE5, A: 0xFF}
		fg = ColorWarning
	case BannerError:
		bg = color.NRGBA{R: 0xFD, G: 0xEA, B: 0xEA, A: 0xFF}
		fg = ColorError
	}
	return Border(gtx, fg, func(gtx layout.Context) layout.Dimensions {
		return CustomCard(gtx, bg, unit.Dp(10), func(gtx layout.Context) layout.Dimensions {
			l := material.Body2(th, text)
			l.Color = fg
			return l.Layout(gtx)
		})
	})
}

func PrimaryButton(th *material.Theme, c *widget.Clickable, text string) material.ButtonStyle {
	btn := material.Button(th, c, text)
	btn.Background = th.Palette.ContrastBg
	btn.Color = th.Palette.ContrastFg
	btn.TextSize = unit.Sp(14)
	return btn
}

func SecondaryButton(th *material.Theme, c *widget.Clickable, text string) material.ButtonStyle {
	btn := material.Button(th, c, text)
	btn.Background = color.NRGBA{R: 0xE7, G: 0xEE, B: 0xEC, A: 0xFF}
	btn.Color = th.Palette.Fg
	btn.TextSize = unit.Sp(14)
	return btn
}

// IconLabel renders an icon followed by a label.
func IconLabel(gtx layout.Context, th *material.Theme, icon *widget.Icon, text string, clr color.NRGBA, size unit.Sp) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if icon == nil {
				return layout.Dimensions{}
			}
			return layout.Inset{Right: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				sz := gtx.Dp(unit.Dp(float32(size) * 1.5))
				if min := gtx.Dp(20); sz < min {
					sz = min
				}
				gtx.Constraints.Min = image.Point{X: sz, Y: sz}
				gtx.Constraints.Max = gtx.Constraints.Min
				return icon.Layout(gtx, clr)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Label(th, size, text)
			l.Color = clr
			return l.Layout(gtx)
		}),
	)
}

func EmptyState(gtx layout.Context, th *material.Theme, title, subtitle string) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Body1(th, title)
				l.Font.Weight = font.Bold
				return l.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Body2(th, subtitle)
				l.Color = ColorMuted
				return l.Layout(gtx)
			}),
		)
	})
}
