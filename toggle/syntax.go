package toggle

import (
	"path/filepath"
	"strings"
)

// Profile describes the comment syntax for one file extension. The zero
// value of an optional field ("") means the language has no such token.
type Profile struct {
	// Line is the single-line comment token, e.g. "//" or "#".
	Line string

	// Doc is the doc-comment token, e.g. "///". Empty when the language
	// has no line-level doc comments.
	Doc string

	// BlockOpen and BlockClose are the block comment markers, each written
	// on its own line. Empty when the language has no block comments.
	BlockOpen  string
	BlockClose string
}

// profiles is the static extension table. Lookup is case-sensitive on the
// literal suffix after the last '.'.
var profiles = map[string]Profile{
	// Double-slash languages
	"rs":    {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},
	"c":     {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},
	"cpp":   {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},
	"cc":    {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},
	"cxx":   {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},
	"h":     {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},
	"hpp":   {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},
	"js":    {Line: "//", BlockOpen: "/*", BlockClose: "*/"},
	"ts":    {Line: "//", BlockOpen: "/*", BlockClose: "*/"},
	"java":  {Line: "//", BlockOpen: "/*", BlockClose: "*/"},
	"go":    {Line: "//", BlockOpen: "/*", BlockClose: "*/"},
	"swift": {Line: "//", Doc: "///", BlockOpen: "/*", BlockClose: "*/"},

	// Hash languages
	"py":   {Line: "#", BlockOpen: `"""`, BlockClose: `"""`},
	"sh":   {Line: "#"},
	"bash": {Line: "#"},
	"toml": {Line: "#"},
	"yaml": {Line: "#"},
	"yml":  {Line: "#"},
	"rb":   {Line: "#"},
	"pl":   {Line: "#"},
	"r":    {Line: "#"},
}

// ProfileFor resolves the comment syntax for an extension (without the
// dot). Unknown extensions return ErrUnsupportedExtension.
func ProfileFor(ext string) (Profile, error) {
	p, ok := profiles[ext]
	if !ok {
		return Profile{}, ErrUnsupportedExtension
	}
	return p, nil
}

// profileForPath resolves the comment syntax from a file path. A filename
// without any '.' returns ErrNoExtension.
func profileForPath(path string) (Profile, error) {
	ext := filepath.Ext(filepath.Base(path))
	if ext == "" {
		return Profile{}, ErrNoExtension
	}
	return ProfileFor(strings.TrimPrefix(ext, "."))
}
