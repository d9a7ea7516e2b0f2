package main

import (
	"errors"

	"github.com/commentkit/commentkit/toggle"
)

// Exit codes reported by commentctl. Argument and usage problems exit 1.
const (
	exitOK                  = 0
	exitUsage               = 1
	exitFileNotFound        = 2
	exitNoExtension         = 3
	exitUnsupportedExt      = 4
	exitLineNotFound        = 5
	exitIOError             = 6
	exitPathError           = 7
	exitLineTooLong         = 8
	exitInconsistentMarkers = 9
	exitInvalidRange        = 10
)

// exitCode maps a toggle error onto the documented exit-code table.
func exitCode(err error) int {
	var (
		lineNotFound *toggle.LineNotFoundError
		lineTooLong  *toggle.LineTooLongError
		ioErr        *toggle.IOError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, toggle.ErrFileNotFound):
		return exitFileNotFound
	case errors.Is(err, toggle.ErrNoExtension):
		return exitNoExtension
	case errors.Is(err, toggle.ErrUnsupportedExtension):
		return exitUnsupportedExt
	case errors.As(err, &lineNotFound):
		return exitLineNotFound
	case errors.As(err, &ioErr):
		return exitIOError
	case errors.Is(err, toggle.ErrPath):
		return exitPathError
	case errors.As(err, &lineTooLong):
		return exitLineTooLong
	case errors.Is(err, toggle.ErrInconsistentBlockMarkers):
		return exitInconsistentMarkers
	case errors.Is(err, toggle.ErrInvalidLineRange):
		return exitInvalidRange
	default:
		return exitUsage
	}
}
