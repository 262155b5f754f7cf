package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Bills(ctx context.Context) error
	Payments(ctx context.Context) error
	Year(ctx context.Context, arg string) error
	Pay(ctx context.Context) error
	Support(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - support        — support information
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - dashboard      — account overview
//	  - bills          — billing history (bills tab)
//	  - payments       — billing history (payments tab)
//	  - year <yyyy>    — change the history year filter
//	  - pay            — submit a manual payment
//	  - support        — support information
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err == io.EOF {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: dashboard, bills, payments, year <yyyy>, pay, support, logout, exit")
			} else {
				printlnFn("Available commands: login, support, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "b", "bills":
			_ = a.Bills(ctx)

		case "p", "payments":
			_ = a.Payments(ctx)

		case "year":
			if len(parts) < 2 {
				printlnFn("Usage: year <yyyy>")
				continue
			}
			_ = a.Year(ctx, parts[1])

		case "pay":
			_ = a.Pay(ctx)

		case "support":
			_ = a.Support(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err == io.EOF {
			return
		}
	}
}
