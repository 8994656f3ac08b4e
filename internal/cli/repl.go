package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Transfer(ctx context.Context) error
	Loan(ctx context.Context) error
	Close(ctx context.Context) error
	Sort(ctx context.Context) error
	Summary(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a command per line and dispatches to methods on 'a' until
// scanner EOF or an explicit exit. Command handlers report their own errors
// to the user; the loop stays resilient and only does I/O.
//
// Commands while logged out: help, login, exit|quit.
// Commands while logged in: transfer, loan, close, sort, (s)ummary, logout,
// plus the always-available ones.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bankist %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: transfer, loan, close, sort, (s)ummary, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "loan":
			_ = a.Loan(ctx)

		case "close":
			_ = a.Close(ctx)

		case "sort":
			_ = a.Sort(ctx)

		case "s", "summary":
			_ = a.Summary(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
