// Package clipboard writes the generated command string to the system
// clipboard, with a fallback through the platform copy utilities when the
// primary mechanism is unavailable or rejects the write.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard mechanism works on this
// system.
var ErrUnavailable = errors.New("no clipboard mechanism available")

// Write copies text to the system clipboard.
func Write(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	return writeFallback(text)
}

// writeFallback pipes the text through the first working platform copy
// utility.
func writeFallback(text string) error {
	for _, argv := range fallbackCommands() {
		path, err := exec.LookPath(argv[0])
		if err != nil {
			continue
		}
		cmd := exec.Command(path, argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return ErrUnavailable
}

// fallbackCommands lists the copy utilities to try, in order, for the
// current platform.
func fallbackCommands() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{{"clip"}}
	default:
		return [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
}
