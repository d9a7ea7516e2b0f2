// Package toggle edits comment markers and indentation on specific lines
// of source files, preserving every other byte of the file exactly.
//
// # Overview
//
// Each operation is a self-contained transaction against one file: the
// file is read fully into memory, the selected lines are transformed, and
// the whole file is rewritten through a backup-then-rename protocol. On
// any failure the original file is left byte-identical to before the
// call. Comment syntax is resolved from the file extension via a static
// table; no language parsing is performed.
//
// # Operations
//
// Single-line comment toggling:
//
//	err := toggle.ToggleLine("main.py", 3)     // "x = 1" <-> "# x = 1"
//	err := toggle.ToggleDocLine("lib.rs", 10)  // uses "///"
//
// Batch toggling (deduplicated, all-or-nothing validation):
//
//	err := toggle.ToggleLines("main.go", []int{5, 10, 15})
//
// Block comments around an inclusive range:
//
//	err := toggle.ToggleBlock("main.c", 5, 12)
//
// Indentation, one fixed 4-space unit at a time:
//
//	err := toggle.IndentLine("script.sh", 7)
//	err := toggle.UnindentRange("script.sh", 7, 9)
//
// # Toggle Semantics
//
// A line counts as commented only when it reads {leading whitespace}
// {token}{exactly one space}. Toggling strips or inserts exactly token
// plus one space after the leading whitespace, so toggling twice always
// restores the original line. Any other spacing after the token is
// treated as uncommented content.
//
// # Safety
//
// Before the original is replaced, its current bytes are copied to a
// sibling file named backup_toggle_comment_<filename> in the same
// directory. The backup is kept after success as a recovery copy. The
// replacement is written to a temp file and renamed over the original, so
// the file is never observed half-written.
//
// Line numbers are 1-indexed. All validation (bounds, range order, the
// 1 MiB per-line cap, batch size) happens before any write begins.
//
// # Concurrency
//
// Operations are synchronous and stateless; calls against distinct files
// are independent. Access to a single path is not locked and must be
// serialized by the caller.
package toggle
