package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to
// keep the UI tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// SelectOption renders a numbered single-select list (the terminal analog
// of a dropdown) and reads the user's choice. Empty input keeps def. The
// returned index is always within range; a malformed or out-of-range entry
// is re-prompted once and then falls back to def.
func SelectOption(reader *bufio.Reader, prompt string, labels []string, def int, w io.Writer) (int, error) {
	if len(labels) == 0 {
		return -1, errors.New("no options to select from")
	}
	if def < 0 || def >= len(labels) {
		def = 0
	}

	fmt.Fprintln(w, prompt)
	for i, label := range labels {
		marker := " "
		if i == def {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d) %s\n", marker, i+1, label)
	}

	for attempt := 0; attempt < 2; attempt++ {
		fmt.Fprintf(w, "Select [1-%d, Enter = %d]: ", len(labels), def+1)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return -1, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, nil
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= len(labels) {
			return n - 1, nil
		}
		fmt.Fprintln(w, "Invalid choice.")
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return def, nil
}
