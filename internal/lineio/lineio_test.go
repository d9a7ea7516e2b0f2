package lineio

import (
	"bytes"
	"testing"
)

// Parse/Bytes must reproduce any input byte for byte.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"single newline", "\n"},
		{"lf with trailing", "a\nb\n"},
		{"lf no trailing", "a\nb"},
		{"crlf", "a\r\nb\r\n"},
		{"crlf no trailing", "a\r\nb"},
		{"mixed endings", "a\r\nb\nc\r\n"},
		{"blank lines", "\n\n\n"},
		{"lone line no newline", "just one line"},
		{"trailing spaces", "a  \n\tb\t\n"},
		{"cr without lf", "a\rb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.content))
			if got := doc.Bytes(); !bytes.Equal(got, []byte(tt.content)) {
				t.Errorf("round trip = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestParse_metadata(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantLines    int
		wantEnding   Ending
		wantTrailing bool
	}{
		{"empty", "", 0, LF, false},
		{"lf", "a\nb\n", 2, LF, true},
		{"lf no trailing", "a\nb", 2, LF, false},
		{"crlf", "a\r\nb\r\n", 2, CRLF, true},
		{"single newline", "\n", 1, LF, true},
		{"no newline at all", "abc", 1, LF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.content))
			if doc.LineCount() != tt.wantLines {
				t.Errorf("LineCount = %d, want %d", doc.LineCount(), tt.wantLines)
			}
			if doc.Ending != tt.wantEnding {
				t.Errorf("Ending = %v, want %v", doc.Ending, tt.wantEnding)
			}
			if doc.TrailingNewline != tt.wantTrailing {
				t.Errorf("TrailingNewline = %v, want %v", doc.TrailingNewline, tt.wantTrailing)
			}
		})
	}
}

func TestParse_crlfKeepsCarriageReturnOnLine(t *testing.T) {
	doc := Parse([]byte("a\r\nb\r\n"))
	if string(doc.Lines[0]) != "a\r" {
		t.Errorf("line 0 = %q, want %q", doc.Lines[0], "a\r")
	}
}

func TestNewLine(t *testing.T) {
	lf := Parse([]byte("a\n"))
	if got := lf.NewLine("/*"); string(got) != "/*" {
		t.Errorf("LF NewLine = %q", got)
	}
	crlf := Parse([]byte("a\r\n"))
	if got := crlf.NewLine("/*"); string(got) != "/*\r" {
		t.Errorf("CRLF NewLine = %q", got)
	}
}

func TestInsertDelete(t *testing.T) {
	doc := Parse([]byte("a\nb\nc\n"))

	doc.InsertLine(1, []byte("x"))
	if got := string(doc.Bytes()); got != "a\nx\nb\nc\n" {
		t.Fatalf("after insert: %q", got)
	}

	doc.DeleteLine(1)
	if got := string(doc.Bytes()); got != "a\nb\nc\n" {
		t.Fatalf("after delete: %q", got)
	}

	doc.InsertLine(0, []byte("first"))
	doc.InsertLine(doc.LineCount(), []byte("last"))
	if got := string(doc.Bytes()); got != "first\na\nb\nc\nlast\n" {
		t.Fatalf("after boundary inserts: %q", got)
	}
}

func TestLinesDoNotAliasInput(t *testing.T) {
	content := []byte("abc\ndef\n")
	doc := Parse(content)
	content[0] = 'Z'
	if string(doc.Lines[0]) != "abc" {
		t.Errorf("line 0 aliases parse input: %q", doc.Lines[0])
	}
}
