package algorithms

import (
	"regexp"
	"strings"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

var listMarkers = []string{"* ", "- ", "1. "}

// AnalyzeContentQuality scores free text in [1,10]; empty text scores 0.
func (a *Analyzer) AnalyzeContentQuality(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	score := 5.0

	wordCount := len(strings.Fields(text))
	switch {
	case wordCount < 10:
		score--
	case wordCount >= 200:
		score += 2
	case wordCount >= 50:
		score++
	}

	lengths := make(map[int]struct{})
	for _, s := range sentenceSplit.Split(text, -1) {
		if n := len(strings.Fields(s)); n > 0 {
			lengths[n] = struct{}{}
		}
	}
	if len(lengths) >= 3 {
		score++
	}

	for _, m := range listMarkers {
		if strings.Contains(text, m) {
			score++
			break
		}
	}

	for _, w := range words(text) {
		if _, ok := a.technical[w]; ok {
			score++
			break
		}
	}

	return Clamp(score, 1, 10)
}
