// Package normalize computes the cleaned form of pasted input for error hints
// Classification never sees the cleaned form; it only backs a "did you mean" suggestion
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Remove control and format chars (BOM, ZWSP, ZWJ, bidi marks)
// 3 Width fold fullwidth to ASCII (１７５０ -> 1750, ＋ -> +)
// 4 Map dash lookalikes to ASCII hyphen-minus (U+2212 MINUS SIGN, en dash, ...)
// Letters are never case folded; "now" and the unit codes are case sensitive
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.In(unicode.Cc)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			runes.Map(foldDash),
		)
	},
}

// foldDash maps dash punctuation people paste from documents onto '-'
func foldDash(r rune) rune {
	switch r {
	case '\u2010', '\u2011', '\u2012', '\u2013', '\u2212', '\uFE63':
		return '-'
	default:
		return r
	}
}

// Input returns the cleaned form of s following the pipeline described above
// Pure ASCII input without control bytes is returned unchanged
func Input(s string) string {
	if isPlain(s) {
		return s
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// Suggest returns the cleaned form of s when it differs from s and is not empty
func Suggest(s string) (string, bool) {
	out := Input(s)
	if out == s || out == "" {
		return "", false
	}
	return out, true
}

// isPlain reports whether s is printable ASCII only
func isPlain(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b >= 0x7F {
			return false
		}
	}
	return true
}
