package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"gioui.org/x/explorer"

	"github.com/vocdoni/gofirma/vocseal/internal/certstore"
	"github.com/vocdoni/gofirma/vocseal/internal/config"
	"github.com/vocdoni/gofirma/vocseal/internal/jsign"
	"github.com/vocdoni/gofirma/vocseal/internal/storage"
)

type Screen int

const (
	ScreenSign Screen = iota
	ScreenCertificates
	ScreenHistory
	ScreenAbout
)

// App holds the shared state of the running application. Worker goroutines
// mutate it only through the mutex-guarded methods and then call
// Invalidate, which is how feedback is marshaled back to the UI loop.
type App struct {
	mu            sync.Mutex
	CurrentScreen Screen

	// Services
	Config   *config.Config
	History  *storage.JobLogger
	Runner   jsign.Runner
	Explorer *explorer.Explorer

	// State
	aliases    []string
	transcript []string
	status     string
	signing    bool

	// UI Actions
	Invalidate func()
}

func NewApp() (*App, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	history, err := storage.NewJobLogger(dir)
	if err != nil {
		return nil, fmt.Errorf("create job logger: %w", err)
	}

	a := &App{
		CurrentScreen: ScreenSign,
		History:       history,
		Invalidate:    func() {},
	}

	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	a.Config = cfg
	if err != nil {
		log.Printf("DEBUG: config load: %v", err)
		a.Logf("Config file ignored: %v", err)
	}

	return a, nil
}

func (a *App) AliasesSnapshot() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.aliases...)
}

func (a *App) SetAliases(aliases []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.aliases = aliases
}

// RefreshAliases queries the credential store and substitutes the
// configured fallback alias when nothing is found. Returns how many
// aliases the store yielded.
func (a *App) RefreshAliases(ctx context.Context) int {
	query := &certstore.CommandLister{Command: a.Config.CertQuery}
	aliases := certstore.Aliases(ctx, query)
	found := len(aliases)
	if found == 0 && a.Config.FallbackAlias != "" {
		aliases = []string{a.Config.FallbackAlias}
	}
	a.SetAliases(aliases)
	return found
}

// Logf appends a line to the transcript and wakes the UI loop.
func (a *App) Logf(format string, args ...any) {
	a.mu.Lock()
	a.transcript = append(a.transcript, fmt.Sprintf(format, args...))
	a.mu.Unlock()
	a.Invalidate()
}

func (a *App) Transcript() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := ""
	for i, line := range a.transcript {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

func (a *App) SetStatus(status string) {
	a.mu.Lock()
	a.status = status
	a.mu.Unlock()
	a.Invalidate()
}

func (a *App) Status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// BeginJob claims the single signing slot. It reports false while another
// job is in flight; a second trigger is a no-op.
func (a *App) BeginJob() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.signing {
		return false
	}
	a.signing = true
	return true
}

func (a *App) EndJob() {
	a.mu.Lock()
	a.signing = false
	a.mu.Unlock()
	a.Invalidate()
}

func (a *App) Signing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.signing
}
