package cli

import (
	"context"
)

// Input helpers behind indirections so tests can script user interaction.
var (
	getSimpleText = GetSimpleText
	getPIN        = GetPIN
	getAmount     = GetAmount
)

// Login prompts for a username and PIN and opens a session. Failures are
// shown to the user, not just logged; the original product swallowed them
// into a diagnostic console.
func (a *App) Login(ctx context.Context) error {
	handle, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	pin, err := getPIN(a.out)
	if err != nil {
		return err
	}
	defer wipe(pin)

	if err := a.ctrl.Login(ctx, handle, string(pin)); err != nil {
		printlnFn("Login failed:", err)
		return err
	}
	return nil
}

// Transfer prompts for a recipient and amount and moves the money.
func (a *App) Transfer(ctx context.Context) error {
	to, err := getSimpleText(a.reader, "Transfer to (username)", a.out)
	if err != nil {
		return err
	}
	amount, err := getAmount(a.reader, "Amount", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.ctrl.Transfer(ctx, to, amount); err != nil {
		printlnFn("Transfer failed:", err)
		return err
	}
	printlnFn("Transfer complete")
	return nil
}

// Loan prompts for an amount and requests a loan against the movement history.
func (a *App) Loan(ctx context.Context) error {
	amount, err := getAmount(a.reader, "Loan amount", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.ctrl.RequestLoan(ctx, amount); err != nil {
		printlnFn("Loan refused:", err)
		return err
	}
	printlnFn("Loan granted")
	return nil
}

// Close re-prompts for credentials and removes the current account for good.
func (a *App) Close(ctx context.Context) error {
	handle, err := getSimpleText(a.reader, "Confirm username", a.out)
	if err != nil {
		return err
	}
	pin, err := getPIN(a.out)
	if err != nil {
		return err
	}
	defer wipe(pin)

	if err := a.ctrl.CloseAccount(ctx, handle, string(pin)); err != nil {
		printlnFn("Close failed:", err)
		return err
	}
	printlnFn("Account closed")
	return nil
}

// Sort flips the movement display order and re-renders.
func (a *App) Sort(ctx context.Context) error {
	if err := a.ctrl.ToggleSort(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	return nil
}

// Summary re-renders the ledger and summary figures.
func (a *App) Summary(ctx context.Context) error {
	if err := a.ctrl.Refresh(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	return nil
}

// Logout ends the session, keeping the account.
func (a *App) Logout(ctx context.Context) error {
	if err := a.ctrl.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	return nil
}
