// Package lineio loads files as ordered line sequences and reconstructs
// their exact byte content.
package lineio

import (
	"bytes"
	"os"
)

// Ending is the line-ending style used when new lines are inserted into a
// document. Existing lines keep whatever terminator bytes they had.
type Ending int

const (
	// LF terminates lines with "\n".
	LF Ending = iota
	// CRLF terminates lines with "\r\n".
	CRLF
)

// Document is a file held in memory as lines. Lines are stored without
// their trailing '\n'; a '\r' that preceded the newline stays as the last
// byte of the line. Rejoining the lines with '\n' (plus a final '\n' when
// TrailingNewline is set) reproduces the original file byte for byte, even
// for files with mixed line endings.
type Document struct {
	Lines           [][]byte
	Ending          Ending
	TrailingNewline bool
}

// Load reads the file at path into a Document.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content), nil
}

// Parse splits content into a Document.
func Parse(content []byte) *Document {
	doc := &Document{Ending: detectEnding(content)}
	if len(content) == 0 {
		return doc
	}

	parts := bytes.Split(content, []byte{'\n'})
	if len(parts[len(parts)-1]) == 0 {
		doc.TrailingNewline = true
		parts = parts[:len(parts)-1]
	}
	doc.Lines = make([][]byte, len(parts))
	for i, p := range parts {
		// bytes.Split returns subslices of content; copy so line edits
		// never alias each other.
		doc.Lines[i] = append([]byte(nil), p...)
	}
	return doc
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Bytes reassembles the document into its on-disk byte form.
func (d *Document) Bytes() []byte {
	if len(d.Lines) == 0 {
		return nil
	}
	size := len(d.Lines)
	for _, l := range d.Lines {
		size += len(l)
	}
	out := make([]byte, 0, size)
	for i, l := range d.Lines {
		out = append(out, l...)
		if i < len(d.Lines)-1 || d.TrailingNewline {
			out = append(out, '\n')
		}
	}
	return out
}

// NewLine returns content with the document's ending applied, suitable for
// insertion into Lines. For CRLF documents the stored line carries a
// trailing '\r'.
func (d *Document) NewLine(content string) []byte {
	line := []byte(content)
	if d.Ending == CRLF {
		line = append(line, '\r')
	}
	return line
}

// InsertLine inserts line before index i (0-based).
func (d *Document) InsertLine(i int, line []byte) {
	d.Lines = append(d.Lines, nil)
	copy(d.Lines[i+1:], d.Lines[i:])
	d.Lines[i] = line
}

// DeleteLine removes the line at index i (0-based).
func (d *Document) DeleteLine(i int) {
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
}

// detectEnding inspects the first newline in content. Files without any
// newline default to LF.
func detectEnding(content []byte) Ending {
	i := bytes.IndexByte(content, '\n')
	if i > 0 && content[i-1] == '\r' {
		return CRLF
	}
	return LF
}
