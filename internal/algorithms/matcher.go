package algorithms

import (
	"math"
	"sort"
	"strings"

	"freelancehub_backend/internal/models"
)

// Candidate is an eligible freelancer with everything the ranker needs.
type Candidate struct {
	FreelancerID      string
	Name              string
	Skills            string
	Bio               string
	Tags              []string
	Experience        models.Experience
	CombinedRating    float64
	CompletedProjects int
}

// MatchedFreelancer is one ranked entry of a job's match list.
type MatchedFreelancer struct {
	FreelancerID      string            `json:"id"`
	Name              string            `json:"name"`
	Experience        models.Experience `json:"experience"`
	CombinedRating    float64           `json:"combinedRating"`
	RelevanceScore    float64           `json:"relevanceScore"`
	CompletedProjects int               `json:"completedProjects"`
	Tags              []string          `json:"tags"`
	MatchScore        float64           `json:"matchScore"`
}

// EligibleExperiences returns the freelancer tiers allowed to take a job of
// the given difficulty. Harder jobs accept every tier below them.
func EligibleExperiences(difficulty models.Experience) []models.Experience {
	switch difficulty {
	case models.ExperienceAdvanced:
		return []models.Experience{models.ExperienceBeginner, models.ExperienceIntermediate, models.ExperienceAdvanced}
	case models.ExperienceIntermediate:
		return []models.Experience{models.ExperienceBeginner, models.ExperienceIntermediate}
	default:
		return []models.Experience{models.ExperienceBeginner}
	}
}

func ExperienceWeight(e models.Experience) float64 {
	switch e {
	case models.ExperienceAdvanced:
		return 1.0
	case models.ExperienceIntermediate:
		return 0.85
	default:
		return 0.7
	}
}

func ProjectBonus(completed int) float64 {
	return min(0.5, float64(completed)*0.05)
}

// RelevanceScore measures keyword overlap between a job and a candidate
// and blends it with the skill-match analyzer when anything overlaps.
func (a *Analyzer) RelevanceScore(job JobText, c Candidate) float64 {
	jobKW := a.ExtractKeywords(job.Title + " " + job.Requirements)

	candKW := append(a.ExtractKeywords(c.Skills), a.ExtractKeywords(c.Bio)...)
	for _, t := range c.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			candKW = append(candKW, t)
		}
	}

	matches := keywordMatches(jobKW, candKW)
	relevance := min(float64(matches)/float64(max(1, len(jobKW)))*10, 10)

	if matches > 0 {
		skill := a.AnalyzeSkillMatch(job, CandidateText{
			Skills:    c.Skills,
			Bio:       c.Bio,
			Portfolio: c.Tags,
		})
		relevance = skill*0.7 + relevance*0.3
	}
	return min(relevance, 10)
}

func MatchScore(combined, relevance float64, e models.Experience, completed int) float64 {
	return Round1(combined*0.5 + relevance*0.4 + ExperienceWeight(e)*0.1 + ProjectBonus(completed))
}

// Score turns a candidate into a ranked entry.
func (a *Analyzer) Score(job JobText, c Candidate) MatchedFreelancer {
	relevance := a.RelevanceScore(job, c)
	return MatchedFreelancer{
		FreelancerID:      c.FreelancerID,
		Name:              c.Name,
		Experience:        c.Experience,
		CombinedRating:    c.CombinedRating,
		RelevanceScore:    Round1(relevance),
		CompletedProjects: c.CompletedProjects,
		Tags:              c.Tags,
		MatchScore:        MatchScore(c.CombinedRating, relevance, c.Experience, c.CompletedProjects),
	}
}

// RankMatches sorts by match score descending, then freelancer id ascending,
// and keeps at most limit entries.
func RankMatches(matches []MatchedFreelancer, limit int) []MatchedFreelancer {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].FreelancerID < matches[j].FreelancerID
	})
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
