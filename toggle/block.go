package toggle

import "bytes"

// ToggleBlock wraps the inclusive 1-indexed range [start, end] in block
// comment markers, or unwraps it when both boundary lines already are the
// markers.
//
// Decision rule: the line at start must equal BlockOpen and the line at
// end must equal BlockClose (trailing whitespace ignored) for the range
// to count as wrapped; then both boundary lines are deleted and the
// interior keeps its content, renumbered. Otherwise BlockOpen is inserted
// as a new line before start and BlockClose as a new line after end. A
// range where only one boundary matches fails with
// ErrInconsistentBlockMarkers rather than guessing.
//
// Unlike the per-line togglers this operation changes the file's line
// count, by exactly +2 on wrap and -2 on unwrap.
func ToggleBlock(path string, start, end int) error {
	prof, err := profileForPath(path)
	if err != nil {
		return err
	}
	if prof.BlockOpen == "" {
		return ErrUnsupportedExtension
	}

	doc, err := load(path)
	if err != nil {
		return err
	}
	if start > end || start < 1 || end > doc.LineCount() {
		return ErrInvalidLineRange
	}
	for _, n := range []int{start, end} {
		if err := checkLen(doc, n); err != nil {
			return err
		}
	}

	// A single-line range always wraps. For languages whose open and close
	// markers are identical (Python's triple quote) a lone marker line
	// would otherwise satisfy both boundary tests at once.
	if start == end {
		doc.InsertLine(end, doc.NewLine(prof.BlockClose))
		doc.InsertLine(start-1, doc.NewLine(prof.BlockOpen))
		return flush(path, doc)
	}

	openMatch := markerLine(doc.Lines[start-1], prof.BlockOpen)
	closeMatch := markerLine(doc.Lines[end-1], prof.BlockClose)

	switch {
	case openMatch && closeMatch:
		doc.DeleteLine(end - 1)
		doc.DeleteLine(start - 1)
	case openMatch != closeMatch:
		return ErrInconsistentBlockMarkers
	default:
		doc.InsertLine(end, doc.NewLine(prof.BlockClose))
		doc.InsertLine(start-1, doc.NewLine(prof.BlockOpen))
	}
	return flush(path, doc)
}

// markerLine reports whether line is exactly marker, ignoring trailing
// whitespace (including the '\r' a CRLF file leaves on stored lines).
func markerLine(line []byte, marker string) bool {
	return string(bytes.TrimRight(line, " \t\r")) == marker
}
