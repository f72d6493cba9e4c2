package algorithms

import "strings"

type JobText struct {
	Title        string `json:"title"`
	Requirements string `json:"requirements"`
	Description  string `json:"description"`
}

type CandidateText struct {
	Skills    string   `json:"skills"`
	Bio       string   `json:"bio"`
	Portfolio []string `json:"portfolio"`
}

func (c CandidateText) empty() bool {
	if strings.TrimSpace(c.Skills) != "" || strings.TrimSpace(c.Bio) != "" {
		return false
	}
	for _, p := range c.Portfolio {
		if strings.TrimSpace(p) != "" {
			return false
		}
	}
	return true
}

// keywordMatches counts job keywords that are a substring of some candidate
// keyword, or contain one.
func keywordMatches(jobKW, candKW []string) int {
	matches := 0
	for _, jk := range jobKW {
		for _, ck := range candKW {
			if strings.Contains(ck, jk) || strings.Contains(jk, ck) {
				matches++
				break
			}
		}
	}
	return matches
}

// AnalyzeSkillMatch scores a candidate against a job in [1,10].
func (a *Analyzer) AnalyzeSkillMatch(job JobText, cand CandidateText) float64 {
	if strings.TrimSpace(job.Requirements) == "" && cand.empty() {
		return 5
	}

	jobKW := a.ExtractKeywords(strings.Join([]string{job.Title, job.Requirements, job.Description}, " "))

	lists := [][]string{a.ExtractKeywords(cand.Skills), a.ExtractKeywords(cand.Bio)}
	for _, p := range cand.Portfolio {
		lists = append(lists, a.ExtractKeywords(p))
	}
	candKW := mergeKeywords(lists...)

	var pct float64
	if len(jobKW) > 0 {
		pct = float64(keywordMatches(jobKW, candKW)) / float64(len(jobKW))
	}

	score := 5 + pct*5
	if len(candKW) > 30 {
		score += 0.5
	}
	return Round1(Clamp(score, 1, 10))
}
