package toggle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleBlock_addAndRemove(t *testing.T) {
	content := "a\nb\nc\nd\n"
	path := writeFile(t, "f.rs", content)

	require.NoError(t, ToggleBlock(path, 2, 3))
	require.Equal(t, "a\n/*\nb\nc\n*/\nd\n", readFile(t, path))

	// Unwrapping targets the marker lines themselves.
	require.NoError(t, ToggleBlock(path, 2, 5))
	require.Equal(t, content, readFile(t, path))
}

func TestToggleBlock_lineCountDelta(t *testing.T) {
	path := writeFile(t, "f.c", "a\nb\nc\n")

	require.NoError(t, ToggleBlock(path, 1, 3))
	require.Equal(t, 5, strings.Count(readFile(t, path), "\n"))

	require.NoError(t, ToggleBlock(path, 1, 5))
	require.Equal(t, 3, strings.Count(readFile(t, path), "\n"))
}

func TestToggleBlock_python(t *testing.T) {
	path := writeFile(t, "f.py", "a\nb\n")

	require.NoError(t, ToggleBlock(path, 1, 2))
	require.Equal(t, "\"\"\"\na\nb\n\"\"\"\n", readFile(t, path))

	require.NoError(t, ToggleBlock(path, 1, 4))
	require.Equal(t, "a\nb\n", readFile(t, path))
}

func TestToggleBlock_crlfMarkers(t *testing.T) {
	path := writeFile(t, "f.rs", "a\r\nb\r\n")

	require.NoError(t, ToggleBlock(path, 1, 2))
	require.Equal(t, "/*\r\na\r\nb\r\n*/\r\n", readFile(t, path))

	require.NoError(t, ToggleBlock(path, 1, 4))
	require.Equal(t, "a\r\nb\r\n", readFile(t, path))
}

func TestToggleBlock_markerTrailingWhitespace(t *testing.T) {
	path := writeFile(t, "f.rs", "/*  \na\n*/\t\n")
	require.NoError(t, ToggleBlock(path, 1, 3))
	require.Equal(t, "a\n", readFile(t, path))
}

func TestToggleBlock_singleLineAlwaysWraps(t *testing.T) {
	// A lone """ line matches both markers at once; single-line ranges wrap
	// instead of guessing.
	path := writeFile(t, "f.py", "\"\"\"\n")
	require.NoError(t, ToggleBlock(path, 1, 1))
	require.Equal(t, "\"\"\"\n\"\"\"\n\"\"\"\n", readFile(t, path))
}

func TestToggleBlock_inconsistentMarkers(t *testing.T) {
	t.Run("only open matches", func(t *testing.T) {
		path := writeFile(t, "f.rs", "/*\na\nb\n")
		require.ErrorIs(t, ToggleBlock(path, 1, 3), ErrInconsistentBlockMarkers)
		require.Equal(t, "/*\na\nb\n", readFile(t, path))
	})
	t.Run("only close matches", func(t *testing.T) {
		path := writeFile(t, "f.rs", "a\nb\n*/\n")
		require.ErrorIs(t, ToggleBlock(path, 1, 3), ErrInconsistentBlockMarkers)
	})
}

func TestToggleBlock_invalidRange(t *testing.T) {
	path := writeFile(t, "f.rs", strings.Repeat("x\n", 12))

	require.ErrorIs(t, ToggleBlock(path, 10, 5), ErrInvalidLineRange)
	require.ErrorIs(t, ToggleBlock(path, 0, 5), ErrInvalidLineRange)
	require.ErrorIs(t, ToggleBlock(path, 5, 13), ErrInvalidLineRange)
}

func TestToggleBlock_noBlockMarkers(t *testing.T) {
	path := writeFile(t, "f.sh", "echo hi\n")
	require.ErrorIs(t, ToggleBlock(path, 1, 1), ErrUnsupportedExtension)
}

func TestToggleBlock_interiorUntouched(t *testing.T) {
	interior := "  keep \t exact \r\nbytes\n"
	path := writeFile(t, "f.go", interior)

	require.NoError(t, ToggleBlock(path, 1, 2))
	wrapped := readFile(t, path)
	require.Contains(t, wrapped, interior)

	require.NoError(t, ToggleBlock(path, 1, 4))
	require.Equal(t, interior, readFile(t, path))
}
