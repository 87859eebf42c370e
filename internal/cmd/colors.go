package cmd

import (
	"os"
	"runtime"
)

// ANSI color codes for plain command output (the TUI styles itself
// through lipgloss). Initialized in init() and may be disabled.
var (
	colorGreen = "\033[0;32m"
	colorDim   = "\033[2m"
	colorBold  = "\033[1m"
	colorReset = "\033[0m"
)

func init() {
	if shouldDisableColors() {
		colorGreen = ""
		colorDim = ""
		colorBold = ""
		colorReset = ""
	}
}

func shouldDisableColors() bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return true
	}

	if os.Getenv("TERM") == "dumb" {
		return true
	}

	// On Windows, assume ANSI only under Windows Terminal or ANSICON.
	if runtime.GOOS == "windows" {
		if os.Getenv("WT_SESSION") != "" {
			return false
		}
		if os.Getenv("ANSICON") != "" {
			return false
		}
		return true
	}

	return false
}
