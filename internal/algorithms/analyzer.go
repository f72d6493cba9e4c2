package algorithms

import (
	"strings"
	"unicode"
)

// Analyzer runs the heuristic text analyzers over an immutable Lexicon.
// All methods are pure and safe for concurrent use.
type Analyzer struct {
	stopWords map[string]struct{}
	positive  map[string]struct{}
	negative  map[string]struct{}
	technical map[string]struct{}
}

func NewAnalyzer(lex *Lexicon) *Analyzer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	lower := func(words []string) []string {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}
		return out
	}
	return &Analyzer{
		stopWords: toSet(lower(lex.StopWords)),
		positive:  toSet(lower(lex.PositiveWords)),
		negative:  toSet(lower(lex.NegativeWords)),
		technical: toSet(lower(lex.TechnicalTerms)),
	}
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}

// words lowercases text and splits it on every rune outside [a-z0-9_].
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
