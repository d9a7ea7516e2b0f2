package toggle

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the target file does not exist.
	ErrFileNotFound = errors.New("toggle: file not found")

	// ErrNoExtension indicates the filename carries no extension, so no
	// comment syntax can be resolved.
	ErrNoExtension = errors.New("toggle: no file extension")

	// ErrUnsupportedExtension indicates the extension is not in the syntax
	// table, or the requested operation needs a token the profile lacks.
	ErrUnsupportedExtension = errors.New("toggle: unsupported extension")

	// ErrPath indicates the path could not be resolved or decomposed.
	ErrPath = errors.New("toggle: path error")

	// ErrInvalidLineRange indicates a range with start > end, bounds outside
	// the file, or a batch exceeding MaxBatchLines.
	ErrInvalidLineRange = errors.New("toggle: invalid line range")

	// ErrInconsistentBlockMarkers indicates exactly one of the two block
	// boundary lines matches its marker.
	ErrInconsistentBlockMarkers = errors.New("toggle: inconsistent block markers")
)

// LineNotFoundError reports a 1-indexed line number outside the file.
type LineNotFoundError struct {
	Requested int
	FileLines int
}

func (e *LineNotFoundError) Error() string {
	return fmt.Sprintf("toggle: line %d not found (file has %d lines)", e.Requested, e.FileLines)
}

// LineTooLongError reports a selected line exceeding MaxLineLen.
type LineTooLongError struct {
	Line   int
	Length int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("toggle: line %d exceeds maximum length: %d bytes", e.Line, e.Length)
}

// IOError wraps a filesystem failure with the operation that hit it.
type IOError struct {
	Op  string // "read", "write", "backup", "rename"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("toggle: i/o error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
