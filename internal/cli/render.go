package cli

import (
	"fmt"

	"github.com/dmitrijs2005/bankist/internal/session"
)

// The Presenter implementation. RenderTimer and the expiry renders arrive on
// the timer goroutine, so anything touching App state takes the mutex.

func (a *App) RenderLedger(rows []session.Row) {
	fmt.Fprintln(a.out)
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-14s  %-12s  %14s\n", r.Label, r.DateText, r.AmountText)
	}
}

func (a *App) RenderSummary(balance, inflow, outflow, interest string) {
	fmt.Fprintf(a.out, "\nBalance: %s\n", balance)
	fmt.Fprintf(a.out, "In: %s  Out: %s  Interest: %s\n", inflow, outflow, interest)
}

func (a *App) RenderWelcome(text string) {
	fmt.Fprintln(a.out, text)
}

// RenderTimer keeps the latest countdown text for the prompt instead of
// printing a line per second.
func (a *App) RenderTimer(text string) {
	a.mu.Lock()
	a.timerText = text
	a.mu.Unlock()
}

func (a *App) SetVisible(visible bool) {
	a.mu.Lock()
	a.visible = visible
	if !visible {
		a.timerText = ""
	}
	a.mu.Unlock()
}
