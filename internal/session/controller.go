// Package session holds the logged-in lifecycle: the idle-logout timer and
// the controller orchestrating login, transfer, loan, close-account and
// sort-order operations against the account store.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/bank"
	"github.com/dmitrijs2005/bankist/internal/ledger"
	"github.com/dmitrijs2005/bankist/internal/localex"
	"github.com/dmitrijs2005/bankist/internal/logging"
	"github.com/dmitrijs2005/bankist/internal/moneyx"
)

// LoggedOutPrompt is what the welcome line shows when no session is active.
const LoggedOutPrompt = "Log in to get started"

// Controller drives a single user session over the account store. All state
// changes funnel through it; the mutex serializes user-triggered operations
// against timer expiry, which arrives on the scheduler goroutine.
type Controller struct {
	mu      sync.Mutex
	store   *bank.Store
	timer   *Timer
	pres    Presenter
	log     logging.Logger
	timeout int
	now     func() time.Time

	current   *bank.Account
	sessionID string
	ascending bool
}

// NewController wires a controller to its store, presenter and tick source.
func NewController(store *bank.Store, pres Presenter, sched Scheduler, log logging.Logger, timeout time.Duration) *Controller {
	c := &Controller{
		store:   store,
		pres:    pres,
		log:     log,
		timeout: int(timeout.Seconds()),
		now:     time.Now,
	}
	c.timer = NewTimer(sched, c.renderTick, c.expire)
	return c
}

// LoggedIn reports whether a session is active.
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// CurrentHandle returns the handle of the authenticated account, or "".
func (c *Controller) CurrentHandle() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return ""
	}
	return c.current.Handle
}

// Login authenticates by handle and PIN (value equality, nothing more — this
// is a demo bank) and opens a session with a fresh countdown.
func (c *Controller) Login(ctx context.Context, handle, pin string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc, ok := c.store.Find(handle)
	if !ok {
		return ErrAccountNotFound
	}
	if acc.PIN != pin {
		return ErrBadPIN
	}

	c.current = acc
	c.sessionID = uuid.NewString()
	c.ascending = false
	c.timer.Start(c.timeout)

	c.log.Info(ctx, "login", "session_id", c.sessionID, "handle", handle)

	now := c.now()
	welcome := fmt.Sprintf("Welcome back, %s\nAs of %s",
		localex.Title(acc.FirstName()), now.Format(localex.DateTimeLayout(acc.Locale)))
	c.pres.RenderWelcome(welcome)
	c.pres.SetVisible(true)
	c.render()
	return nil
}

// Logout ends the session without touching the account.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return ErrNotLoggedIn
	}
	c.log.Info(ctx, "logout", "session_id", c.sessionID, "handle", c.current.Handle)
	c.endSession()
	return nil
}

// Transfer moves amount from the current account to the recipient. The two
// ledger appends are independent, not atomic across accounts: if the process
// dies between them the ledgers diverge. Known limitation of the product,
// carried over as-is.
func (c *Controller) Transfer(ctx context.Context, toHandle string, amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotLoggedIn
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	recipient, ok := c.store.Find(toHandle)
	if !ok {
		return ErrNoSuchRecipient
	}
	if amount.GreaterThan(ledger.Balance(c.current)) {
		return ErrInsufficientFunds
	}
	if recipient.Handle == c.current.Handle {
		return ErrSelfTransfer
	}

	now := c.now()
	c.current.Append(amount.Neg(), now)
	recipient.Append(amount, now)
	c.timer.Reset(c.timeout)

	c.log.Info(ctx, "transfer", "session_id", c.sessionID,
		"from", c.current.Handle, "to", toHandle, "amount", amount.String())
	c.render()
	return nil
}

// RequestLoan grants a loan when some past movement is at least a tenth of
// the requested amount. The amount is rounded to the nearest whole unit
// before validation.
func (c *Controller) RequestLoan(ctx context.Context, amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotLoggedIn
	}
	amount = amount.Round(0)
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	tenth := amount.Shift(-1)
	eligible := false
	for _, m := range c.current.Movements {
		if m.Amount.GreaterThanOrEqual(tenth) {
			eligible = true
			break
		}
	}
	if !eligible {
		return ErrLoanIneligible
	}

	c.current.Append(amount, c.now())
	c.timer.Reset(c.timeout)

	c.log.Info(ctx, "loan granted", "session_id", c.sessionID,
		"handle", c.current.Handle, "amount", amount.String())
	c.render()
	return nil
}

// CloseAccount removes the current account from the active set. Both handle
// and PIN must match the authenticated account.
func (c *Controller) CloseAccount(ctx context.Context, handle, pin string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotLoggedIn
	}
	if handle != c.current.Handle || pin != c.current.PIN {
		return ErrBadCredentials
	}

	c.store.Remove(handle)
	c.log.Info(ctx, "account closed", "session_id", c.sessionID, "handle", handle)
	c.endSession()
	return nil
}

// ToggleSort flips between chronological and ascending-amount display order
// and re-renders the ledger. Pure state flip; no timer reset.
func (c *Controller) ToggleSort(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotLoggedIn
	}
	c.ascending = !c.ascending
	c.pres.RenderLedger(c.ledgerRows())
	return nil
}

// Refresh re-renders the ledger and summary for the current account.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotLoggedIn
	}
	c.render()
	return nil
}

// endSession must be called with c.mu held.
func (c *Controller) endSession() {
	c.timer.Stop()
	c.current = nil
	c.sessionID = ""
	c.ascending = false
	c.pres.RenderWelcome(LoggedOutPrompt)
	c.pres.SetVisible(false)
}

// expire runs on the scheduler goroutine when the countdown hits zero.
func (c *Controller) expire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return
	}
	c.log.Info(context.Background(), "session expired",
		"session_id", c.sessionID, "handle", c.current.Handle)
	c.current = nil
	c.sessionID = ""
	c.ascending = false
	c.pres.RenderWelcome(LoggedOutPrompt)
	c.pres.SetVisible(false)
}

func (c *Controller) renderTick(remaining int) {
	c.pres.RenderTimer(fmt.Sprintf("%02d:%02d", remaining/60, remaining%60))
}

// render must be called with c.mu held and a current account set.
func (c *Controller) render() {
	acc := c.current
	c.pres.RenderLedger(c.ledgerRows())
	c.pres.RenderSummary(
		moneyx.Format(ledger.Balance(acc), acc.Currency),
		moneyx.Format(ledger.Inflow(acc), acc.Currency),
		moneyx.Format(ledger.Outflow(acc), acc.Currency),
		moneyx.Format(ledger.Interest(acc), acc.Currency),
	)
}

// ledgerRows must be called with c.mu held and a current account set.
// Rows come out newest-first, matching the original movement list.
func (c *Controller) ledgerRows() []Row {
	acc := c.current
	now := c.now()
	entries := ledger.Ordered(acc, c.ascending)

	rows := make([]Row, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		kind := "deposit"
		if e.Amount.Sign() < 0 {
			kind = "withdrawal"
		}
		dateText, ok := ledger.RelativeDayLabel(e.Date, now)
		if !ok {
			dateText = e.Date.Format(localex.DateLayout(acc.Locale))
		}
		rows = append(rows, Row{
			Label:      fmt.Sprintf("%d %s", e.Index+1, kind),
			DateText:   dateText,
			AmountText: moneyx.Format(e.Amount, acc.Currency),
		})
	}
	return rows
}
