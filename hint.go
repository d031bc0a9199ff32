package savekit

import (
	"path/filepath"
	"strings"
)

// Hint is an advisory format signal derived from a file name extension.
// Hints are lowercase and carry the leading dot (".pk4"); they steer
// recognizers but are never authoritative on their own.
type Hint string

// NoHint is the empty hint.
const NoHint Hint = ""

// NormalizeHint canonicalizes an extension string into a Hint: trimmed,
// lowercased, leading dot added when missing.
func NormalizeHint(ext string) Hint {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return NoHint
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return Hint(ext)
}

// HintFromPath derives the hint from a file path's extension.
func HintFromPath(path string) Hint {
	return NormalizeHint(filepath.Ext(path))
}

// String returns the hint as a plain string.
func (h Hint) String() string {
	return string(h)
}
