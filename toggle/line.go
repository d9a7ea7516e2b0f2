package toggle

// Single-line transforms. Every function here takes a stored line (no
// trailing '\n'; a '\r' from a CRLF file may be the last byte) and returns
// the replacement line. None of them touch anything past the prefix they
// add or remove.

// leadingRun returns the length of the run of leading space and tab bytes.
func leadingRun(line []byte) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// hasToken reports whether line reads {leading whitespace}{token}{one
// space}. The policy is deliberately narrow: only a single space directly
// after the token counts as commented. "//  x" and "//x" are both treated
// as uncommented.
func hasToken(line []byte, token string) bool {
	i := leadingRun(line)
	if len(line)-i < len(token)+1 {
		return false
	}
	if string(line[i:i+len(token)]) != token {
		return false
	}
	return line[i+len(token)] == ' '
}

// toggleToken adds token plus one space after the leading whitespace, or
// strips exactly that prefix when already present. Applying it twice
// returns the original line.
func toggleToken(line []byte, token string) []byte {
	i := leadingRun(line)
	if hasToken(line, token) {
		out := make([]byte, 0, len(line)-len(token)-1)
		out = append(out, line[:i]...)
		out = append(out, line[i+len(token)+1:]...)
		return out
	}
	out := make([]byte, 0, len(line)+len(token)+1)
	out = append(out, line[:i]...)
	out = append(out, token...)
	out = append(out, ' ')
	out = append(out, line[i:]...)
	return out
}

// indentLine prepends one indentation unit.
func indentLine(line []byte) []byte {
	out := make([]byte, 0, len(line)+IndentWidth)
	for i := 0; i < IndentWidth; i++ {
		out = append(out, ' ')
	}
	return append(out, line...)
}

// unindentLine removes up to one indentation unit of leading spaces. Tabs
// are never counted or removed; a line with fewer than IndentWidth leading
// spaces loses only what it has.
func unindentLine(line []byte) []byte {
	n := 0
	for n < IndentWidth && n < len(line) && line[n] == ' ' {
		n++
	}
	return append([]byte(nil), line[n:]...)
}
