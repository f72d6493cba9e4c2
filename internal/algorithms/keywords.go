package algorithms

// ExtractKeywords returns the distinct significant tokens of text in
// first-seen order. Tokens of length <= 2, stop words and pure numbers
// are dropped.
func (a *Analyzer) ExtractKeywords(text string) []string {
	if text == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	keywords := []string{}
	for _, w := range words(text) {
		if len(w) <= 2 || isNumeric(w) {
			continue
		}
		if _, stop := a.stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}

// mergeKeywords concatenates keyword lists, dropping duplicates.
func mergeKeywords(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, k := range list {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
