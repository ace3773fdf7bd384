package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Card draws a rounded rectangle background behind a widget.
func Card(gtx layout.Context, bg color.NRGBA, w layout.Widget) layout.Dimensions {
	return CustomCard(gtx, bg, unit.Dp(16), w)
}

func CustomCard(gtx layout.Context, bg color.NRGBA, inset unit.Dp, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			r := gtx.Dp(10)
			rr := clip.RRect{
				Rect: image.Rectangle{Max: gtx.Constraints.Min},
				NE:   r, NW: r, SE: r, SW: r,
			}
			paint.FillShape(gtx.Ops, bg, rr.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(inset).Layout(gtx, w)
		}),
	)
}

// Border draws a rounded border around a widget.
func Border(gtx layout.Context, clr color.NRGBA, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			r := gtx.Dp(10)
			rr := clip.RRect{
				Rect: image.Rectangle{Max: gtx.Constraints.Min},
				NE:   r, NW: r, SE: r, SW: r,
			}
			paint.FillShape(gtx.Ops, clr, clip.Stroke{
				Path:  rr.Path(gtx.Ops),
				Width: float32(gtx.Dp(1)),
			}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(w),
	)
}

// Divider draws a thin horizontal line across the available width.
func Divider(gtx layout.Context, clr color.NRGBA) layout.Dimensions {
	d := image.Point{X: gtx.Constraints.Min.X, Y: gtx.Dp(1)}
	paint.FillShape(gtx.Ops, clr, clip.Rect(image.Rectangle{Max: d}).Op())
	return layout.Dimensions{Size: d}
}
