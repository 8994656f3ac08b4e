package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Transfer(ctx context.Context) error {
	f.calls = append(f.calls, "transfer")
	return nil
}
func (f *fakeExec) Loan(ctx context.Context) error {
	f.calls = append(f.calls, "loan")
	return nil
}
func (f *fakeExec) Close(ctx context.Context) error {
	f.calls = append(f.calls, "close")
	return nil
}
func (f *fakeExec) Sort(ctx context.Context) error {
	f.calls = append(f.calls, "sort")
	return nil
}
func (f *fakeExec) Summary(ctx context.Context) error {
	f.calls = append(f.calls, "summary")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"transfer",
		"loan",
		"sort",
		"s",
		"summary",
		"foobar",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	assert.Equal(t, []string{"login", "transfer", "loan", "sort", "summary", "summary", "logout"}, exec.calls)
	assert.False(t, exec.loggedIn)
}

func TestRunREPL_ExitsOnEOFAndQuit(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	assert.Empty(t, exec.calls)

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("quit\nlogin\n")))
	assert.Empty(t, exec.calls, "nothing may run after quit")
}

func TestRunREPL_SkipsBlankLines(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("\n   \nclose\nexit\n")))
	assert.Equal(t, []string{"close"}, exec.calls)
}
