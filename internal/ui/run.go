package ui

import (
	"image/color"

	gioapp "gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"

	"github.com/vocdoni/gofirma/vocseal/internal/app"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/icons"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/screens"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/widgets"
	"github.com/vocdoni/gofirma/vocseal/internal/version"
)

func Run(w *gioapp.Window, a *app.App) error {
	a.Explorer = explorer.NewExplorer(w)
	a.Invalidate = w.Invalidate
	th := NewTheme()
	var ops op.Ops

	signScreen := screens.NewSignScreen(a, th)
	certScreen := screens.NewCertificatesScreen(a, th)
	historyScreen := screens.NewHistoryScreen(a, th)
	aboutScreen := screens.NewAboutScreen(a, th)

	var (
		tabSign    widget.Clickable
		tabCerts   widget.Clickable
		tabHistory widget.Clickable
		tabAbout   widget.Clickable
	)

	tabs := []struct {
		click  *widget.Clickable
		screen app.Screen
		icon   *widget.Icon
		label  string
	}{
		{&tabSign, app.ScreenSign, icons.IconSign, "Sign"},
		{&tabCerts, app.ScreenCertificates, icons.IconCertificates, "Certificates"},
		{&tabHistory, app.ScreenHistory, icons.IconHistory, "History"},
		{&tabAbout, app.ScreenAbout, icons.IconInfo, "About"},
	}

	for {
		e := w.Event()
		a.Explorer.ListenEvents(e)
		switch e := e.(type) {
		case gioapp.DestroyEvent:
			return e.Err
		case gioapp.FrameEvent:
			gtx := gioapp.NewContext(&ops, e)

			for _, tab := range tabs {
				if tab.click.Clicked(gtx) {
					if tab.screen == app.ScreenHistory {
						historyScreen.RefreshEntries()
					}
					a.CurrentScreen = tab.screen
				}
			}

			var current layout.Widget
			switch a.CurrentScreen {
			case app.ScreenCertificates:
				current = certScreen.Layout
			case app.ScreenHistory:
				current = historyScreen.Layout
			case app.ScreenAbout:
				current = aboutScreen.Layout
			default:
				current = signScreen.Layout
			}

			layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return widgets.Border(gtx, widgets.ColorBorder, func(gtx layout.Context) layout.Dimensions {
					return widgets.Card(gtx, th.Palette.Bg, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
									children := []layout.FlexChild{
										layout.Rigid(func(gtx layout.Context) layout.Dimensions {
											return widgets.IconLabel(gtx, th, icons.IconSeal, "VocSeal", th.Palette.ContrastBg, unit.Sp(20))
										}),
										layout.Rigid(layout.Spacer{Width: unit.Dp(28)}.Layout),
									}
									for _, tab := range tabs {
										tab := tab
										children = append(children,
											layout.Rigid(func(gtx layout.Context) layout.Dimensions {
												bg := color.NRGBA{}
												fg := th.Palette.Fg
												if a.CurrentScreen == tab.screen {
													bg = th.Palette.ContrastBg
													fg = th.Palette.ContrastFg
												}
												return material.Clickable(gtx, tab.click, func(gtx layout.Context) layout.Dimensions {
													return widgets.CustomCard(gtx, bg, unit.Dp(8), func(gtx layout.Context) layout.Dimensions {
														gtx.Constraints.Min.X = gtx.Dp(120)
														return widgets.IconLabel(gtx, th, tab.icon, tab.label, fg, unit.Sp(14))
													})
												})
											}),
											layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
										)
									}
									return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
								})
							}),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return widgets.Divider(gtx, widgets.ColorDivider)
							}),
							layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(20)).Layout(gtx, current)
							}),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
									l := material.Caption(th, "VocSeal "+version.Current+" | signing is performed by JSignPdf")
									l.Color = widgets.ColorMuted
									return l.Layout(gtx)
								})
							}),
						)
					})
				})
			})

			e.Frame(gtx.Ops)
		}
	}
}
