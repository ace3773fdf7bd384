package screens

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/asaskevich/govalidator"

	"github.com/vocdoni/gofirma/vocseal/internal/app"
	"github.com/vocdoni/gofirma/vocseal/internal/jsign"
	"github.com/vocdoni/gofirma/vocseal/internal/storage"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/icons"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/widgets"
)

type SignScreen struct {
	App   *app.App
	Theme *material.Theme

	MainList widget.List

	PDFEditor   widget.Editor
	JavaEditor  widget.Editor
	JarEditor   widget.Editor
	ImageEditor widget.Editor
	BrowsePDF   widget.Clickable
	BrowseJava  widget.Clickable
	BrowseJar   widget.Clickable
	BrowseImage widget.Clickable

	AliasEnum    widget.Enum
	AliasEditor  widget.Editor
	RefreshCerts widget.Clickable

	OwnerEditor  widget.Editor
	UserEditor   widget.Editor
	TSAEditor    widget.Editor
	SuffixEditor widget.Editor
	PageEditor   widget.Editor

	PlacementEnum widget.Enum
	PrintingEnum  widget.Enum

	PermCommenting    widget.Bool
	PermCopying       widget.Bool
	PermAccessibility widget.Bool
	PermEditing       widget.Bool
	PermFormFill      widget.Bool
	PermSigning       widget.Bool

	SignButton widget.Clickable

	LogEditor widget.Editor
}

func NewSignScreen(a *app.App, th *material.Theme) *SignScreen {
	s := &SignScreen{
		App:   a,
		Theme: th,
	}
	s.MainList.Axis = layout.Vertical

	for _, e := range []*widget.Editor{
		&s.PDFEditor, &s.JavaEditor, &s.JarEditor, &s.ImageEditor,
		&s.AliasEditor, &s.OwnerEditor, &s.UserEditor,
		&s.TSAEditor, &s.SuffixEditor, &s.PageEditor,
	} {
		e.SingleLine = true
	}
	s.OwnerEditor.Mask = '*'
	s.UserEditor.Mask = '*'
	s.LogEditor.ReadOnly = true

	cfg := a.Config
	s.JavaEditor.SetText(cfg.FindJava())
	s.JarEditor.SetText(cfg.JarPath)
	s.ImageEditor.SetText(cfg.SignatureImage)
	s.OwnerEditor.SetText(cfg.OwnerPassword)
	s.SuffixEditor.SetText(cfg.OutputSuffix)
	s.TSAEditor.SetText(cfg.TSAURL)
	s.PageEditor.SetText(jsign.DefaultPage)
	s.PlacementEnum.Value = jsign.PlacementBottomRight
	s.PrintingEnum.Value = jsign.PrintingAllow

	s.PermCommenting.Value = true
	s.PermAccessibility.Value = true

	go s.refreshAliases(true)
	return s
}

func (s *SignScreen) refreshAliases(initial bool) {
	found := s.App.RefreshAliases(context.Background())
	aliases := s.App.AliasesSnapshot()
	if len(aliases) > 0 && s.AliasEnum.Value == "" {
		s.AliasEnum.Value = aliases[0]
	}
	if !initial {
		if found > 0 {
			s.App.Logf("Certificate list refreshed (%d found).", found)
		} else {
			s.App.Logf("No certificates detected. Enter an alias manually.")
		}
	}
	s.App.Invalidate()
}

func (s *SignScreen) options() jsign.Options {
	alias := strings.TrimSpace(s.AliasEditor.Text())
	if alias == "" {
		alias = s.AliasEnum.Value
	}
	return jsign.Options{
		PDFPath:       strings.TrimSpace(s.PDFEditor.Text()),
		JavaPath:      strings.TrimSpace(s.JavaEditor.Text()),
		JarPath:       strings.TrimSpace(s.JarEditor.Text()),
		ImagePath:     strings.TrimSpace(s.ImageEditor.Text()),
		Keystore:      s.App.Config.Keystore,
		Alias:         alias,
		OwnerPassword: s.OwnerEditor.Text(),
		UserPassword:  s.UserEditor.Text(),
		TSAURL:        strings.TrimSpace(s.TSAEditor.Text()),
		OutputSuffix:  s.SuffixEditor.Text(),
		Permissions: jsign.Permissions{
			Commenting:           s.PermCommenting.Value,
			Copying:              s.PermCopying.Value,
			AccessibilityCopy:    s.PermAccessibility.Value,
			Editing:              s.PermEditing.Value,
			FormFill:             s.PermFormFill.Value,
			AdditionalSignatures: s.PermSigning.Value,
		},
		Printing:  s.PrintingEnum.Value,
		Page:      s.PageEditor.Text(),
		Placement: s.PlacementEnum.Value,
	}
}

// validate checks the selections a job cannot start without.
func validate(o jsign.Options) error {
	if o.PDFPath == "" {
		return errors.New("select a PDF file")
	}
	if _, err := os.Stat(o.PDFPath); err != nil {
		return errors.New("PDF file not found")
	}
	javaName := strings.TrimSuffix(strings.ToLower(filepath.Base(o.JavaPath)), ".exe")
	if javaName != "java" {
		if _, err := os.Stat(o.JavaPath); err != nil {
			return errors.New("Java executable not found; adjust the path")
		}
	}
	if o.JarPath == "" {
		return errors.New("set the JSignPdf.jar path")
	}
	if _, err := os.Stat(o.JarPath); err != nil {
		return errors.New("JSignPdf.jar not found; adjust the path")
	}
	if o.TSAURL != "" && !govalidator.IsURL(o.TSAURL) {
		return errors.New("TSA URL is not a valid URL")
	}
	return nil
}

func (s *SignScreen) browse(editor *widget.Editor, extensions ...string) {
	go func() {
		if s.App.Explorer == nil {
			s.App.Logf("File picker is unavailable")
			return
		}
		rc, err := s.App.Explorer.ChooseFile(extensions...)
		if err != nil {
			return
		}
		defer rc.Close()
		f, ok := rc.(*os.File)
		if !ok {
			s.App.Logf("File picker returned no usable path")
			return
		}
		editor.SetText(f.Name())
		s.App.Invalidate()
	}()
}

func (s *SignScreen) startJob(opts jsign.Options) {
	s.App.SetStatus("Signing in progress...")
	s.App.Logf("Starting signing job for %s", filepath.Base(opts.PDFPath))

	go func() {
		defer s.App.EndJob()

		res := s.App.Runner.Run(context.Background(), opts)
		for _, note := range res.Notes {
			s.App.Logf("%s", note)
		}
		if res.Stdout != "" {
			s.App.Logf("%s", res.Stdout)
		}
		if res.Stderr != "" {
			s.App.Logf("%s", res.Stderr)
		}

		entry := storage.JobEntry{
			JobID:      res.JobID,
			Document:   opts.PDFPath,
			Alias:      opts.Alias,
			Output:     res.OutputPath,
			DurationMS: res.Duration.Milliseconds(),
		}

		switch res.Outcome {
		case jsign.OutcomeLaunchFailed:
			entry.Status = storage.StatusLaunchError
			entry.Error = res.Err.Error()
			s.App.SetStatus("Execution error: " + res.Err.Error())
		case jsign.OutcomeToolFailed:
			entry.Status = storage.StatusToolError
			entry.Error = res.Err.Error()
			msg := res.Stderr
			if msg == "" {
				msg = res.Err.Error()
			}
			s.App.SetStatus("Signing failed: " + msg)
		default:
			if res.OutputExists {
				entry.Status = storage.StatusSuccess
				s.App.Logf("Signed PDF created: %s", res.OutputPath)
				s.App.SetStatus("Success: signed PDF created at " + res.OutputPath)
			} else {
				entry.Status = storage.StatusUnverified
				s.App.SetStatus("Completed. Check the output directory for the signed file.")
			}
		}

		if err := s.App.History.Log(entry); err != nil {
			log.Printf("DEBUG: history log: %v", err)
		}
	}()
}

func (s *SignScreen) Layout(gtx layout.Context) layout.Dimensions {
	if s.BrowsePDF.Clicked(gtx) {
		s.browse(&s.PDFEditor, ".pdf")
	}
	if s.BrowseJava.Clicked(gtx) {
		s.browse(&s.JavaEditor)
	}
	if s.BrowseJar.Clicked(gtx) {
		s.browse(&s.JarEditor, ".jar")
	}
	if s.BrowseImage.Clicked(gtx) {
		s.browse(&s.ImageEditor, ".png")
	}
	if s.RefreshCerts.Clicked(gtx) {
		go s.refreshAliases(false)
	}

	if s.SignButton.Clicked(gtx) && !s.App.Signing() {
		opts := s.options()
		if err := validate(opts); err != nil {
			s.App.SetStatus("Validation failed: " + err.Error())
		} else if s.App.BeginJob() {
			s.startJob(opts)
		}
	}

	if transcript := s.App.Transcript(); s.LogEditor.Text() != transcript {
		s.LogEditor.SetText(transcript)
	}

	return material.List(s.Theme, &s.MainList).Layout(gtx, 1, func(gtx layout.Context, index int) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Bottom: unit.Dp(14)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widgets.IconLabel(gtx, s.Theme, icons.IconSign, "Sign a PDF", s.Theme.Palette.ContrastBg, unit.Sp(24))
				})
			}),
			layout.Rigid(s.layoutPaths),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(s.layoutOptions),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(s.layoutPermissions),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(s.layoutAction),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(s.layoutLog),
		)
	})
}

func (s *SignScreen) layoutPaths(gtx layout.Context) layout.Dimensions {
	return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.Subtitle2(s.Theme, "Paths").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(s.pathRow("PDF file:", &s.PDFEditor, &s.BrowsePDF)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.pathRow("Java executable:", &s.JavaEditor, &s.BrowseJava)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.pathRow("JSignPdf.jar:", &s.JarEditor, &s.BrowseJar)),
		)
	})
}

func (s *SignScreen) pathRow(label string, ed *widget.Editor, browse *widget.Clickable) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(150)
				return material.Body2(s.Theme, label).Layout(gtx)
			}),
			layout.Flexed(1, material.Editor(s.Theme, ed, "").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				btn := widgets.SecondaryButton(s.Theme, browse, "Browse…")
				btn.TextSize = unit.Sp(12)
				return btn.Layout(gtx)
			}),
		)
	}
}

func (s *SignScreen) fieldRow(label string, ed *widget.Editor, hint string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(220)
				return material.Body2(s.Theme, label).Layout(gtx)
			}),
			layout.Flexed(1, material.Editor(s.Theme, ed, hint).Layout),
		)
	}
}

func (s *SignScreen) layoutOptions(gtx layout.Context) layout.Dimensions {
	aliases := s.App.AliasesSnapshot()

	return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{
			layout.Rigid(material.Subtitle2(s.Theme, "Signing options").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, material.Body2(s.Theme, "Certificate:").Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						btn := widgets.SecondaryButton(s.Theme, &s.RefreshCerts, "Refresh")
						btn.TextSize = unit.Sp(12)
						return btn.Layout(gtx)
					}),
				)
			}),
		}

		if len(aliases) == 0 {
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Caption(s.Theme, "No certificates detected in the credential store.")
				l.Color = widgets.ColorMuted
				return l.Layout(gtx)
			}))
		}
		for _, alias := range aliases {
			alias := alias
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.RadioButton(s.Theme, &s.AliasEnum, alias, alias).Layout(gtx)
			}))
		}

		children = append(children,
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.fieldRow("Custom alias (optional):", &s.AliasEditor, "overrides the selection above")),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.fieldRow("Owner password:", &s.OwnerEditor, "")),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.fieldRow("User password (optional):", &s.UserEditor, "")),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.fieldRow("TSA URL (optional):", &s.TSAEditor, "https://...")),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.fieldRow("Output suffix:", &s.SuffixEditor, jsign.DefaultOutputSuffix)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.fieldRow("Visible signature page:", &s.PageEditor, jsign.DefaultPage)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Dp(220)
						return material.Body2(s.Theme, "Visible placement:").Layout(gtx)
					}),
					layout.Rigid(material.RadioButton(s.Theme, &s.PlacementEnum, jsign.PlacementBottomLeft, jsign.PlacementBottomLeft).Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
					layout.Rigid(material.RadioButton(s.Theme, &s.PlacementEnum, jsign.PlacementBottomRight, jsign.PlacementBottomRight).Layout),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.pathRow("Signature PNG:", &s.ImageEditor, &s.BrowseImage)),
		)

		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (s *SignScreen) layoutPermissions(gtx layout.Context) layout.Dimensions {
	checks := []struct {
		b     *widget.Bool
		label string
	}{
		{&s.PermCommenting, "Allow commenting"},
		{&s.PermCopying, "Allow content copying"},
		{&s.PermAccessibility, "Allow content copying for accessibility"},
		{&s.PermEditing, "Allow editing file content"},
		{&s.PermFormFill, "Allow filling form fields"},
		{&s.PermSigning, "Allow signing (additional signatures)"},
	}

	return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{
			layout.Rigid(material.Subtitle2(s.Theme, "PDF permissions").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
		}
		for _, c := range checks {
			c := c
			children = append(children, layout.Rigid(material.CheckBox(s.Theme, c.b, c.label).Layout))
		}
		children = append(children,
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(material.Body2(s.Theme, "Printing:").Layout),
			layout.Rigid(material.RadioButton(s.Theme, &s.PrintingEnum, jsign.PrintingAllow, jsign.PrintingAllow).Layout),
			layout.Rigid(material.RadioButton(s.Theme, &s.PrintingEnum, jsign.PrintingAllowDegraded, jsign.PrintingAllowDegraded).Layout),
			layout.Rigid(material.RadioButton(s.Theme, &s.PrintingEnum, jsign.PrintingDisallow, jsign.PrintingDisallow).Layout),
		)
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (s *SignScreen) layoutAction(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			status := s.App.Status()
			if status == "" {
				return layout.Dimensions{}
			}
			return widgets.Banner(gtx, s.Theme, statusTone(status), status)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(s.Theme, &s.SignButton, "Sign PDF")
			if s.App.Signing() {
				btn.Background = widgets.ColorBorder
			} else {
				btn.Background = s.Theme.Palette.ContrastBg
			}
			btn.TextSize = unit.Sp(16)
			return btn.Layout(gtx)
		}),
	)
}

func (s *SignScreen) layoutLog(gtx layout.Context) layout.Dimensions {
	return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.Subtitle2(s.Theme, "Log").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if s.LogEditor.Text() == "" {
					l := material.Caption(s.Theme, "Job output will appear here.")
					l.Color = widgets.ColorMuted
					return l.Layout(gtx)
				}
				return material.Editor(s.Theme, &s.LogEditor, "").Layout(gtx)
			}),
		)
	})
}

func statusTone(status string) widgets.BannerTone {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "failed"), strings.Contains(lower, "error"):
		return widgets.BannerError
	case strings.Contains(lower, "success"):
		return widgets.BannerSuccess
	case strings.Contains(lower, "completed"):
		return widgets.BannerWarning
	default:
		return widgets.BannerInfo
	}
}
