package models

import "time"

// CurrentCode is the most recently generated, not-yet-saved code. It lives
// only in working memory; generating a new code silently replaces it.
//
// RasterForm is a data:image/png;base64 URL, VectorForm is SVG text.
type CurrentCode struct {
	Kind        CodeKind
	Text        string
	Size        int
	Color       string
	RasterForm  string
	VectorForm  string
	GeneratedAt time.Time
}

const maxDerivedNameLen = 20

// DeriveFileBaseName builds a default file label from the encoded payload:
// the first 20 bytes with everything outside [a-zA-Z0-9] replaced by '-',
// lowercased. An empty payload falls back to "my-code".
func DeriveFileBaseName(text string) string {
	if text == "" {
		return "my-code"
	}
	if len(text) > maxDerivedNameLen {
		text = text[:maxDerivedNameLen]
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out[i] = c
		case c >= 'A' && c <= 'Z':
			out[i] = c + ('a' - 'A')
		default:
			out[i] = '-'
		}
	}
	return string(out)
}
