package clipboard

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackCommands(t *testing.T) {
	cmds := fallbackCommands()
	assert.NotEmpty(t, cmds)
	for _, argv := range cmds {
		assert.NotEmpty(t, argv)
	}

	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, "pbcopy", cmds[0][0])
	case "windows":
		assert.Equal(t, "clip", cmds[0][0])
	default:
		// Wayland first, then the X11 utilities.
		assert.Equal(t, "wl-copy", cmds[0][0])
	}
}

func TestWriteFallbackNoUtilities(t *testing.T) {
	// With an empty PATH no copy utility resolves, so the fallback must
	// fail cleanly rather than hang or panic.
	t.Setenv("PATH", t.TempDir())
	err := writeFallback("hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}
