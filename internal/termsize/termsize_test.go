package termsize

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfPseudoTerminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a pseudo terminal")
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("failed to allocate pseudo terminal: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))
	w, err := Of(tty)
	require.NoError(t, err)
	assert.Equal(t, 80, w)

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 132}))
	w, err = Of(tty)
	require.NoError(t, err)
	assert.Equal(t, 132, w)
}

func TestOfRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	_, err = Of(f)
	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestOfNil(t *testing.T) {
	_, err := Of(nil)
	assert.ErrorIs(t, err, ErrNoTerminal)
}
