package main

import (
	"log"
	"os"

	gioapp "gioui.org/app"
	"gioui.org/unit"

	"github.com/vocdoni/gofirma/vocseal/internal/app"
	"github.com/vocdoni/gofirma/vocseal/internal/ui"
)

func main() {
	vocsealApp, err := app.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	go func() {
		w := new(gioapp.Window)
		w.Option(
			gioapp.Title("VocSeal"),
			gioapp.Size(unit.Dp(1180), unit.Dp(900)),
		)
		if err := ui.Run(w, vocsealApp); err != nil {
			log.Fatalf("UI failed: %v", err)
		}
		os.Exit(0)
	}()

	gioapp.Main()
}
