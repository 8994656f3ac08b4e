package session

// Row is one rendered ledger line, newest movement first.
type Row struct {
	Label      string // e.g. "3 deposit" — insertion-order numbering plus type
	DateText   string // "Today", "2 days ago", or a locale calendar date
	AmountText string // amount in the account currency
}

// Presenter is the outbound rendering contract. The controller pushes fresh
// figures after every successful operation and on timer ticks; the adapter
// decides how to show them. Implementations must tolerate calls from the
// timer goroutine.
type Presenter interface {
	RenderLedger(rows []Row)
	RenderSummary(balance, inflow, outflow, interest string)
	RenderWelcome(text string)
	RenderTimer(text string)
	SetVisible(visible bool)
}
