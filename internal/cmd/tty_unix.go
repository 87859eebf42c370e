//go:build !windows

package cmd

import (
	"fmt"
	"os"
)

// checkTTY verifies that /dev/tty is openable.
func checkTTY() error {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return fmt.Errorf("no TTY available: %w (use 'cmlc snippet' in scripts)", err)
	}
	f.Close()
	return nil
}
