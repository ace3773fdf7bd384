package screens

import (
	"context"
	"fmt"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/vocdoni/gofirma/vocseal/internal/app"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/icons"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/widgets"
)

// CertificatesScreen lists the signing-capable aliases discovered in the
// OS credential store. Read-only: keys and certificates never leave the
// store.
type CertificatesScreen struct {
	App   *app.App
	Theme *material.Theme

	List    widget.List
	Refresh widget.Clickable

	scanning bool
}

func NewCertificatesScreen(a *app.App, th *material.Theme) *CertificatesScreen {
	s := &CertificatesScreen{
		App:   a,
		Theme: th,
	}
	s.List.Axis = layout.Vertical
	return s
}

func (s *CertificatesScreen) Layout(gtx layout.Context) layout.Dimensions {
	if s.Refresh.Clicked(gtx) && !s.scanning {
		s.scanning = true
		go func() {
			found := s.App.RefreshAliases(context.Background())
			s.App.Logf("Certificate list refreshed (%d found).", found)
			s.scanning = false
			s.App.Invalidate()
		}()
	}

	aliases := s.App.AliasesSnapshot()

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return widgets.IconLabel(gtx, s.Theme, icons.IconCertificates, "Certificates", s.Theme.Palette.ContrastBg, unit.Sp(24))
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					label := "Refresh"
					if s.scanning {
						label = "Scanning…"
					}
					btn := widgets.PrimaryButton(s.Theme, &s.Refresh, label)
					return btn.Layout(gtx)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Caption(s.Theme, fmt.Sprintf("%d alias(es) available for signing. The store is queried read-only.", len(aliases)))
			l.Color = widgets.ColorMuted
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if len(aliases) == 0 {
				gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
				return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
					return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
						return widgets.EmptyState(gtx, s.Theme, "No certificates found",
							"Install a certificate with a private key in the OS store, then refresh.")
					})
				})
			}
			return material.List(s.Theme, &s.List).Layout(gtx, len(aliases), func(gtx layout.Context, index int) layout.Dimensions {
				alias := aliases[index]
				return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widgets.Border(gtx, widgets.ColorBorder, func(gtx layout.Context) layout.Dimensions {
						return widgets.Card(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									return widgets.IconLabel(gtx, s.Theme, icons.IconSeal, "", s.Theme.Palette.ContrastBg, unit.Sp(14))
								}),
								layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
									l := material.Body1(s.Theme, alias)
									l.Font.Weight = font.Bold
									return l.Layout(gtx)
								}),
							)
						})
					})
				})
			})
		}),
	)
}
