package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const liveFallbackWarning = "stdout is not a terminal, so the full-screen assessment is unavailable; using line prompts instead."

// uiModeDecision records which front end assess runs, and the notice to
// print when the requested one was downgraded.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal is swapped in tests to fake a TTY.
var isTerminal = writerIsTerminal

// resolveUIMode maps the configured mode onto a front end. The full-screen
// UI needs a terminal on stdout; "live" without one degrades to prompts.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	tty := func() bool { return isTerminal(stdout) }
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return uiModeDecision{useLive: tty()}, nil
	case "plain":
		return uiModeDecision{}, nil
	case "live":
		if !tty() {
			return uiModeDecision{warning: liveFallbackWarning}, nil
		}
		return uiModeDecision{useLive: true}, nil
	}
	return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
}

// fileDescriptor returns the descriptor behind w, if it has one.
func fileDescriptor(w io.Writer) (int, bool) {
	switch typed := w.(type) {
	case *os.File:
		return int(typed.Fd()), true
	case interface{ Fd() uintptr }:
		return int(typed.Fd()), true
	}
	return 0, false
}

func writerIsTerminal(w io.Writer) bool {
	fd, ok := fileDescriptor(w)
	return ok && term.IsTerminal(fd)
}

// terminalWidth returns the column count of stdout, or 0 off a terminal.
func terminalWidth(stdout io.Writer) int {
	fd, ok := fileDescriptor(stdout)
	if !ok || !isTerminal(stdout) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
