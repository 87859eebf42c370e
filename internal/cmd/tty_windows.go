//go:build windows

package cmd

import (
	"fmt"
	"os"
)

// checkTTY verifies stdin looks like an interactive console.
func checkTTY() error {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat stdin: %w", err)
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		return fmt.Errorf("no console available (use 'cmlc snippet' in scripts)")
	}
	return nil
}
