package screens

import (
	"fmt"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/vocdoni/gofirma/vocseal/internal/app"
	"github.com/vocdoni/gofirma/vocseal/internal/storage"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/icons"
	"github.com/vocdoni/gofirma/vocseal/internal/ui/widgets"
)

type HistoryScreen struct {
	App   *app.App
	Theme *material.Theme

	List    widget.List
	Entries []storage.JobEntry
	Refresh widget.Clickable

	Editors map[string]*widget.Editor
}

func NewHistoryScreen(a *app.App, th *material.Theme) *HistoryScreen {
	s := &HistoryScreen{
		App:     a,
		Theme:   th,
		Editors: make(map[string]*widget.Editor),
	}
	s.List.Axis = layout.Vertical
	s.RefreshEntries()
	return s
}

func (s *HistoryScreen) RefreshEntries() {
	go func() {
		entries, err := s.App.History.ReadAll()
		if err != nil {
			return
		}
		// Newest first.
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		s.Entries = entries
		s.App.Invalidate()
	}()
}

func (s *HistoryScreen) Layout(gtx layout.Context) layout.Dimensions {
	if s.Refresh.Clicked(gtx) {
		s.RefreshEntries()
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return widgets.IconLabel(gtx, s.Theme, icons.IconHistory, "Signing History", s.Theme.Palette.Fg, unit.Sp(24))
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widgets.PrimaryButton(s.Theme, &s.Refresh, "Refresh").Layout(gtx)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(20)}.Layout),

		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if len(s.Entries) == 0 {
				gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
				return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
					return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
						return widgets.EmptyState(gtx, s.Theme, "No jobs yet", "Signed documents will show up here.")
					})
				})
			}
			return material.List(s.Theme, &s.List).Layout(gtx, len(s.Entries), func(gtx layout.Context, index int) layout.Dimensions {
				return s.entryCard(gtx, s.Entries[index])
			})
		}),
	)
}

func (s *HistoryScreen) entryCard(gtx layout.Context, entry storage.JobEntry) layout.Dimensions {
	key := entry.JobID + entry.Timestamp
	if _, ok := s.Editors[key]; !ok {
		e := &widget.Editor{ReadOnly: true}
		e.SetText(entry.Output)
		s.Editors[key] = e
	}

	statusTxt, statusClr, icon := statusBadge(entry.Status)

	return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return widgets.Card(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return widgets.Border(gtx, statusClr, func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
									return widgets.IconLabel(gtx, s.Theme, icon, statusTxt, statusClr, unit.Sp(12))
								})
							})
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
						layout.Rigid(material.Caption(s.Theme, entry.Timestamp).Layout),
						layout.Flexed(1, layout.Spacer{Width: unit.Dp(1)}.Layout),
						layout.Rigid(material.Caption(s.Theme, fmt.Sprintf("%d ms", entry.DurationMS)).Layout),
					)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					l := material.Body1(s.Theme, entry.Document)
					l.Font.Weight = font.Bold
					return l.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if entry.Alias == "" {
						return layout.Dimensions{}
					}
					return material.Body2(s.Theme, "Signer: "+entry.Alias).Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(material.Caption(s.Theme, "Output: ").Layout),
						layout.Flexed(1, material.Editor(s.Theme, s.Editors[key], "").Layout),
					)
				}),
				layout.Rigid(material.Caption(s.Theme, "Job ID: "+entry.JobID).Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if entry.Error == "" {
						return layout.Dimensions{}
					}
					return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return widgets.Border(gtx, widgets.ColorError, func(gtx layout.Context) layout.Dimensions {
							return layout.UniformInset(unit.Dp(8)).Layout(gtx, material.Caption(s.Theme, entry.Error).Layout)
						})
					})
				}),
			)
		})
	})
}

func statusBadge(status string) (string, color.NRGBA, *widget.Icon) {
	switch status {
	case storage.StatusSuccess:
		return "SIGNED", widgets.ColorSuccess, icons.IconCheck
	case storage.StatusUnverified:
		return "UNVERIFIED", widgets.ColorWarning, icons.IconWarning
	default:
		return "FAILED", widgets.ColorError, icons.IconError
	}
}
