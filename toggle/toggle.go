package toggle

import (
	"os"
	"sort"

	"github.com/commentkit/commentkit/internal/lineio"
	"github.com/commentkit/commentkit/internal/writer"
)

// ToggleLine toggles the single-line comment token on one 1-indexed line.
func ToggleLine(path string, line int) error {
	prof, err := profileForPath(path)
	if err != nil {
		return err
	}
	return transformLine(path, line, prof.Line)
}

// ToggleDocLine toggles the doc-comment token on one 1-indexed line. It
// fails with ErrUnsupportedExtension when the language has no doc token.
func ToggleDocLine(path string, line int) error {
	prof, err := profileForPath(path)
	if err != nil {
		return err
	}
	if prof.Doc == "" {
		return ErrUnsupportedExtension
	}
	return transformLine(path, line, prof.Doc)
}

// ToggleLines toggles the single-line comment token on a set of 1-indexed
// lines in one transaction. Duplicates collapse to a single toggle; all
// line numbers are validated before anything is changed.
func ToggleLines(path string, lines []int) error {
	prof, err := profileForPath(path)
	if err != nil {
		return err
	}
	return transformLines(path, lines, prof.Line)
}

// ToggleDocLines is ToggleLines using the doc-comment token.
func ToggleDocLines(path string, lines []int) error {
	prof, err := profileForPath(path)
	if err != nil {
		return err
	}
	if prof.Doc == "" {
		return ErrUnsupportedExtension
	}
	return transformLines(path, lines, prof.Doc)
}

// IndentLine prepends one indentation unit to a 1-indexed line.
func IndentLine(path string, line int) error {
	return transformIndent(path, line, line, indentLine)
}

// UnindentLine removes up to one indentation unit of leading spaces from a
// 1-indexed line.
func UnindentLine(path string, line int) error {
	return transformIndent(path, line, line, unindentLine)
}

// IndentRange indents every line in the inclusive 1-indexed range.
func IndentRange(path string, start, end int) error {
	return transformIndent(path, start, end, indentLine)
}

// UnindentRange unindents every line in the inclusive 1-indexed range.
func UnindentRange(path string, start, end int) error {
	return transformIndent(path, start, end, unindentLine)
}

// load opens the target file as a line document and writes the backup
// sibling, mapping filesystem failures onto the package error taxonomy.
// The backup comes before line validation so a recovery copy exists even
// when the request turns out to be invalid.
func load(path string) (*lineio.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, ErrPath
	}
	doc, err := lineio.Load(path)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	if err := writer.Backup(path); err != nil {
		return nil, &IOError{Op: "backup", Err: err}
	}
	return doc, nil
}

// flush writes the document back atomically (temp file, then rename).
func flush(path string, doc *lineio.Document) error {
	if err := writer.Replace(path, doc.Bytes()); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// checkLine validates a 1-indexed line number against the document.
func checkLine(doc *lineio.Document, n int) error {
	if n < 1 || n > doc.LineCount() {
		return &LineNotFoundError{Requested: n, FileLines: doc.LineCount()}
	}
	return nil
}

// checkLen enforces MaxLineLen on a selected line.
func checkLen(doc *lineio.Document, n int) error {
	if l := len(doc.Lines[n-1]); l > MaxLineLen {
		return &LineTooLongError{Line: n, Length: l}
	}
	return nil
}

func transformLine(path string, line int, token string) error {
	doc, err := load(path)
	if err != nil {
		return err
	}
	if err := checkLine(doc, line); err != nil {
		return err
	}
	if err := checkLen(doc, line); err != nil {
		return err
	}
	doc.Lines[line-1] = toggleToken(doc.Lines[line-1], token)
	return flush(path, doc)
}

func transformLines(path string, lines []int, token string) error {
	if len(lines) > MaxBatchLines {
		return ErrInvalidLineRange
	}
	if len(lines) == 0 {
		return nil
	}

	// Deduplicate: toggling the same line twice in one batch would cancel
	// itself. Sorting makes the first diagnostic deterministic.
	seen := make(map[int]struct{}, len(lines))
	targets := make([]int, 0, len(lines))
	for _, n := range lines {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		targets = append(targets, n)
	}
	sort.Ints(targets)

	doc, err := load(path)
	if err != nil {
		return err
	}

	// All-or-nothing: validate every target before touching any line.
	for _, n := range targets {
		if err := checkLine(doc, n); err != nil {
			return err
		}
		if err := checkLen(doc, n); err != nil {
			return err
		}
	}

	for _, n := range targets {
		doc.Lines[n-1] = toggleToken(doc.Lines[n-1], token)
	}
	return flush(path, doc)
}

func transformIndent(path string, start, end int, fn func([]byte) []byte) error {
	doc, err := load(path)
	if err != nil {
		return err
	}
	if start > end || start < 1 || end > doc.LineCount() {
		if start == end {
			// Single-line form reports the line, not the range.
			return checkLine(doc, start)
		}
		return ErrInvalidLineRange
	}
	for n := start; n <= end; n++ {
		if err := checkLen(doc, n); err != nil {
			return err
		}
	}
	for n := start; n <= end; n++ {
		doc.Lines[n-1] = fn(doc.Lines[n-1])
	}
	return flush(path, doc)
}
