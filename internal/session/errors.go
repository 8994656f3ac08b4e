package session

import "errors"

// Sentinel errors for every user-visible failure. All are local and
// recoverable; callers match them with errors.Is and render a message.
var (
	// auth errors
	ErrAccountNotFound = errors.New("account not found")
	ErrBadPIN          = errors.New("incorrect pin")
	ErrBadCredentials  = errors.New("wrong credentials")
	ErrNotLoggedIn     = errors.New("not logged in")

	// transfer errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrNoSuchRecipient   = errors.New("recipient not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSelfTransfer      = errors.New("cannot transfer to own account")

	// loan errors
	ErrLoanIneligible = errors.New("no movement covers a tenth of the requested loan")
)
