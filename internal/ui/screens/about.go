package screens

import (
	"context"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/vocdoni/gofirma/vocseal/internal/app"
	"github.com/vocdoni/gofirma/vocseal/internal/net"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/icons"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/widgets"
	"github.com/vocdoni/gofirma/vocseal/internal/version"
)

const (
	sourceCodeURL = "https://github.com/vocdoni/vocseal"
	jsignPdfURL   = "https://jsignpdf.sourceforge.net"
)

type AboutScreen struct {
	App   *app.App
	Theme *material.Theme

	CheckUpdates widget.Clickable
	OpenReleases widget.Clickable
	OpenSource   widget.Clickable
	OpenJSignPdf widget.Clickable

	updateStatus string
	updateURL    string
	checking     bool
}

func NewAboutScreen(a *app.App, th *material.Theme) *AboutScreen {
	return &AboutScreen{
		App:   a,
		Theme: th,
	}
}

func (s *AboutScreen) Layout(gtx layout.Context) layout.Dimensions {
	if s.CheckUpdates.Clicked(gtx) && !s.checking {
		s.checking = true
		s.updateStatus = "Checking for updates..."
		go func() {
			rel, err := net.FetchLatestRelease(context.Background())
			switch {
			case err != nil:
				s.updateStatus = "Update check failed: " + err.Error()
			case version.IsOutdated(version.Current, rel.Tag):
				s.updateStatus = "New version available: " + rel.Tag
				s.updateURL = rel.URL
			default:
				s.updateStatus = "You are on the latest version."
			}
			s.checking = false
			s.App.Invalidate()
		}()
	}
	if s.OpenReleases.Clicked(gtx) {
		url := s.updateURL
		if url == "" {
			url = net.LatestReleasePageURL
		}
		widgets.OpenURL(url)
	}
	if s.OpenSource.Clicked(gtx) {
		widgets.OpenURL(sourceCodeURL)
	}
	if s.OpenJSignPdf.Clicked(gtx) {
		widgets.OpenURL(jsignPdfURL)
	}

	return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
		return widgets.ConstrainMaxWidth(gtx, unit.Dp(760), func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return widgets.IconLabel(gtx, s.Theme, icons.IconSeal, "VocSeal "+version.Current, s.Theme.Palette.ContrastBg, unit.Sp(24))
					}),
					layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
					layout.Rigid(material.Body1(s.Theme,
						"Signs PDF documents with JSignPdf using a certificate from the operating system's store. "+
							"All cryptographic operations run inside JSignPdf; this tool only drives it.").Layout),
					layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if s.updateStatus == "" {
							return layout.Dimensions{}
						}
						return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return widgets.Banner(gtx, s.Theme, widgets.BannerInfo, s.updateStatus)
						})
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
							layout.Rigid(widgets.PrimaryButton(s.Theme, &s.CheckUpdates, "Check for updates").Layout),
							layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
							layout.Rigid(widgets.SecondaryButton(s.Theme, &s.OpenReleases, "Releases").Layout),
							layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
							layout.Rigid(widgets.SecondaryButton(s.Theme, &s.OpenSource, "Source code").Layout),
							layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
							layout.Rigid(widgets.SecondaryButton(s.Theme, &s.OpenJSignPdf, "JSignPdf").Layout),
						)
					}),
				)
			})
		})
	})
}
