// Package cli is the presentation adapter: an interactive terminal front end
// that relays user actions to the session controller and prints whatever the
// controller asks it to render.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/bankist/internal/bank"
	"github.com/dmitrijs2005/bankist/internal/config"
	"github.com/dmitrijs2005/bankist/internal/logging"
	"github.com/dmitrijs2005/bankist/internal/session"
)

// App owns the terminal surface. It implements session.Presenter and the
// REPL's command interface.
type App struct {
	config *config.Config
	ctrl   *session.Controller
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	mu        sync.Mutex
	visible   bool
	timerText string
}

// NewApp seeds the account store (built-in sample data, or the configured
// seed file) and wires the session controller to the terminal.
func NewApp(cfg *config.Config) (*App, error) {
	log := logging.New(cfg.LogLevel)

	accounts := bank.SeedAccounts()
	if cfg.SeedFile != "" {
		var err error
		accounts, err = bank.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
	}
	store := bank.NewStore(accounts...)

	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.ctrl = session.NewController(store, a, session.SystemScheduler(), log, cfg.SessionTimeout)
	return a, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Bankist CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.LoggedIn()
}

// status is rendered into the prompt: the current handle plus the countdown.
func (a *App) status() string {
	s := a.ctrl.CurrentHandle()
	a.mu.Lock()
	if s != "" && a.timerText != "" {
		s += " " + a.timerText
	}
	a.mu.Unlock()
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}
