package wrapio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "out.html")

	require.NoError(t, WriteFileAtomic(filename, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, "<p>first</p>\n")
		return err
	}), "must write")
	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>\n", string(b))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	errBoom := errors.New("boom")
	err = WriteFileAtomic(filename, 0644, func(w io.Writer) error {
		io.WriteString(w, "<p>partial")
		return errBoom
	})
	assert.True(t, errors.Is(err, errBoom), "expected write error, got %v", err)

	b, err = os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>\n", string(b), "expected prior content to survive a failed write")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "expected no leftover temp files")
}
