package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	yearArg  string
}

func (s *stubExec) isLoggedIn(context.Context) bool { return s.loggedIn }

func (s *stubExec) Login(context.Context) error {
	s.calls = append(s.calls, "login")
	return nil
}

func (s *stubExec) Logout(context.Context) error {
	s.calls = append(s.calls, "logout")
	return nil
}

func (s *stubExec) Dashboard(context.Context) error {
	s.calls = append(s.calls, "dashboard")
	return nil
}

func (s *stubExec) Bills(context.Context) error {
	s.calls = append(s.calls, "bills")
	return nil
}

func (s *stubExec) Payments(context.Context) error {
	s.calls = append(s.calls, "payments")
	return nil
}

func (s *stubExec) Year(_ context.Context, arg string) error {
	s.calls = append(s.calls, "year")
	s.yearArg = arg
	return nil
}

func (s *stubExec) Pay(context.Context) error {
	s.calls = append(s.calls, "pay")
	return nil
}

func (s *stubExec) Support(context.Context) error {
	s.calls = append(s.calls, "support")
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWithInput(exec *stubExec, input string) {
	reader := bufio.NewReader(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "test" }, reader)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{loggedIn: true}

	runWithInput(exec, "dashboard\nbills\npayments\nyear 2024\npay\nsupport\nlogout\nexit\n")

	assert.Equal(t, []string{"dashboard", "bills", "payments", "year", "pay", "support", "logout"}, exec.calls)
	assert.Equal(t, "2024", exec.yearArg)
}

func TestREPL_ShortAliases(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{loggedIn: true}

	runWithInput(exec, "d\nb\np\nquit\n")

	assert.Equal(t, []string{"dashboard", "bills", "payments"}, exec.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)
	exec := &stubExec{}

	runWithInput(exec, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	joined := strings.Join(*lines, "")
	assert.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPL_YearRequiresArgument(t *testing.T) {
	lines := captureOutput(t)
	exec := &stubExec{loggedIn: true}

	runWithInput(exec, "year\nexit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(*lines, ""), "Usage: year <yyyy>")
}

func TestREPL_HelpReflectsLoginState(t *testing.T) {
	lines := captureOutput(t)
	runWithInput(&stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines, ""), "login, support, exit")

	lines = captureOutput(t)
	runWithInput(&stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines, ""), "dashboard, bills, payments")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{loggedIn: true}

	// No exit command; the loop must stop at end of input.
	runWithInput(exec, "dashboard\n")

	assert.Equal(t, []string{"dashboard"}, exec.calls)
}
