package deck

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks strips combining marks after canonical decomposition, so
// accented letters compare equal to their base form ("tŷ" -> "ty").
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free-form answer text: diacritics are folded,
// everything is lowercased, punctuation is dropped and runs of whitespace
// collapse to single spaces. "  HeLlO, WoRlD!  " becomes "hello world".
func Normalize(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// AnswerVariants splits a raw card side on "/" and ";" separators and
// normalizes each variant. "Thank you / Thanks" accepts either phrase.
// Variants that normalize to nothing are dropped, duplicates collapse.
func AnswerVariants(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == ';'
	})

	variants := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		v := Normalize(part)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}
