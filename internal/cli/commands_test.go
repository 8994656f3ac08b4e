package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankist/internal/bank"
	"github.com/dmitrijs2005/bankist/internal/logging"
	"github.com/dmitrijs2005/bankist/internal/session"
)

// newTestApp wires a real controller over the sample dataset to a buffer
// instead of the terminal.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	a := &App{
		log:    log,
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}
	store := bank.NewStore(bank.SeedAccounts()...)
	a.ctrl = session.NewController(store, a, session.SystemScheduler(), log, 100*time.Second)
	return a, &out
}

func stubInputs(t *testing.T, texts []string, pin string, amounts []string) {
	t.Helper()
	origText, origPIN, origAmount := getSimpleText, getPIN, getAmount
	t.Cleanup(func() { getSimpleText, getPIN, getAmount = origText, origPIN, origAmount })

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		require.NotEmpty(t, texts, "unexpected text prompt")
		next := texts[0]
		texts = texts[1:]
		return next, nil
	}
	getPIN = func(io.Writer) ([]byte, error) { return []byte(pin), nil }
	getAmount = func(*bufio.Reader, string, io.Writer) (decimal.Decimal, error) {
		require.NotEmpty(t, amounts, "unexpected amount prompt")
		next := amounts[0]
		amounts = amounts[1:]
		return decimal.RequireFromString(next), nil
	}
}

func TestAppLoginAndSummary(t *testing.T) {
	muteOutput(t)
	ctx := context.Background()
	a, out := newTestApp(t)

	stubInputs(t, []string{"js"}, "1111", nil)
	require.NoError(t, a.Login(ctx))

	assert.True(t, a.isLoggedIn())
	assert.Contains(t, a.status(), "js")
	text := out.String()
	assert.Contains(t, text, "Welcome back, Jonas")
	assert.Contains(t, text, "Balance: €3,840.00")
	assert.Contains(t, text, "8 deposit")

	out.Reset()
	require.NoError(t, a.Summary(ctx))
	assert.Contains(t, out.String(), "Balance: €3,840.00")
}

func TestAppLoginFailureIsReported(t *testing.T) {
	var messages []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		messages = append(messages, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	ctx := context.Background()
	a, _ := newTestApp(t)

	stubInputs(t, []string{"js"}, "0000", nil)
	assert.ErrorIs(t, a.Login(ctx), session.ErrBadPIN)
	assert.False(t, a.isLoggedIn())
	require.NotEmpty(t, messages)
	assert.Contains(t, messages[len(messages)-1], "Login failed")
}

func TestAppTransferAndLoan(t *testing.T) {
	muteOutput(t)
	ctx := context.Background()
	a, out := newTestApp(t)

	stubInputs(t, []string{"js", "jd"}, "1111", []string{"50", "500"})
	require.NoError(t, a.Login(ctx))

	out.Reset()
	require.NoError(t, a.Transfer(ctx))
	assert.Contains(t, out.String(), "Balance: €3,790.00")

	out.Reset()
	require.NoError(t, a.Loan(ctx))
	assert.Contains(t, out.String(), "Balance: €4,290.00")
}

func TestAppCloseAccount(t *testing.T) {
	muteOutput(t)
	ctx := context.Background()
	a, _ := newTestApp(t)

	stubInputs(t, []string{"ss", "ss"}, "4444", nil)
	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Close(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.status())

	// The closed account cannot log back in.
	stubInputs(t, []string{"ss"}, "4444", nil)
	assert.ErrorIs(t, a.Login(ctx), session.ErrAccountNotFound)
}

func TestAppSortToggle(t *testing.T) {
	muteOutput(t)
	ctx := context.Background()
	a, out := newTestApp(t)

	stubInputs(t, []string{"js"}, "1111", nil)
	require.NoError(t, a.Login(ctx))

	out.Reset()
	require.NoError(t, a.Sort(ctx))
	first := strings.Split(strings.TrimSpace(out.String()), "\n")[0]
	assert.Contains(t, first, "€3,000.00", "ascending order puts the largest amount on top")

	require.NoError(t, a.Logout(ctx))
	assert.ErrorIs(t, a.Sort(ctx), session.ErrNotLoggedIn)
}
