package algorithms

import "freelancehub_backend/internal/models"

const (
	WeightEngagement     = 0.25
	WeightContentQuality = 0.30
	WeightMediaQuality   = 0.15
	WeightSentiment      = 0.20
	WeightAuthenticity   = 0.10
)

// PostSignals is the raw activity on a post.
type PostSignals struct {
	Description string
	MediaURLs   []string
	Views       int
	Likes       int
	Comments    []string
}

type PostScores struct {
	Engagement     float64 `json:"engagementScore"`
	ContentQuality float64 `json:"contentQualityScore"`
	MediaQuality   float64 `json:"mediaQualityScore"`
	Sentiment      float64 `json:"commentSentimentScore"`
	Authenticity   float64 `json:"authenticityScore"`
	Overall        float64 `json:"overallAIScore"`
}

// Rounded returns the scores as they are stored and reported: one decimal place.
func (s PostScores) Rounded() PostScores {
	return PostScores{
		Engagement:     Round1(s.Engagement),
		ContentQuality: Round1(s.ContentQuality),
		MediaQuality:   Round1(s.MediaQuality),
		Sentiment:      Round1(s.Sentiment),
		Authenticity:   Round1(s.Authenticity),
		Overall:        Round1(s.Overall),
	}
}

// AuthenticityThresholds are the like/view and comment/view ratios above
// which engagement is treated as suspicious.
type AuthenticityThresholds struct {
	LikeRatio    float64
	CommentRatio float64
}

func DefaultAuthenticityThresholds() AuthenticityThresholds {
	return AuthenticityThresholds{LikeRatio: 0.5, CommentRatio: 0.3}
}

func EngagementScore(likes, comments, views int) float64 {
	rate := (float64(likes)*1.5 + float64(comments)*3) / float64(max(views, 1))
	return min(rate*10, 10)
}

func AuthenticityScore(likes, comments, views int, th AuthenticityThresholds) float64 {
	score := 8.0
	v := float64(max(views, 1))

	if likeRatio := float64(likes) / v; likeRatio > th.LikeRatio {
		score -= min(likeRatio*5, 3)
	}
	if commentRatio := float64(comments) / v; commentRatio > th.CommentRatio {
		score -= min(commentRatio*10, 3)
	}
	return Clamp(score, 1, 10)
}

// ScorePost computes every component score of a post and the weighted overall.
func (a *Analyzer) ScorePost(p PostSignals, th AuthenticityThresholds) PostScores {
	s := PostScores{
		Engagement:     EngagementScore(p.Likes, len(p.Comments), p.Views),
		ContentQuality: a.AnalyzeContentQuality(p.Description),
		MediaQuality:   MediaQualityScore(p.MediaURLs),
		Sentiment:      5,
		Authenticity:   AuthenticityScore(p.Likes, len(p.Comments), p.Views, th),
	}

	if len(p.Comments) > 0 {
		var total float64
		for _, c := range p.Comments {
			total += a.AnalyzeSentiment(c).Score
		}
		s.Sentiment = total / float64(len(p.Comments))
	}

	s.Overall = Round1(s.Engagement*WeightEngagement +
		s.ContentQuality*WeightContentQuality +
		s.MediaQuality*WeightMediaQuality +
		s.Sentiment*WeightSentiment +
		s.Authenticity*WeightAuthenticity)
	return s
}

// RatingWeights returns the (ai, client) blend for a number of client ratings.
func RatingWeights(clientRatings int) (ai, client float64) {
	switch {
	case clientRatings == 0:
		return 1.0, 0
	case clientRatings >= 10:
		return 0.2, 0.8
	case clientRatings >= 5:
		return 0.3, 0.7
	default:
		return 0.6, 0.4
	}
}

// CombinedRatingInput are the stored ratings and activity of a freelancer.
type CombinedRatingInput struct {
	AIScores          []float64
	ClientScores      []float64
	PostCount         int
	CompletedProjects int
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// CombinedRating blends AI and client ratings; a freelancer with no
// ratings of either kind starts at 5.0 before the activity bonus.
func CombinedRating(in CombinedRatingInput) float64 {
	avgAI, avgClient := mean(in.AIScores), mean(in.ClientScores)
	aiW, clientW := RatingWeights(len(in.ClientScores))

	var combined float64
	if aiW > 0 && avgAI > 0 {
		combined += avgAI * aiW
	}
	if clientW > 0 && avgClient > 0 {
		combined += avgClient * clientW
	}
	if combined == 0 {
		combined = 5.0
	}

	bonus := min(0.5, float64(in.PostCount)*0.05+float64(in.CompletedProjects)*0.1)
	return Round1(min(combined+bonus, 10))
}

func TierFor(combined float64) models.Experience {
	switch {
	case combined >= 8.5:
		return models.ExperienceAdvanced
	case combined >= 6.5:
		return models.ExperienceIntermediate
	default:
		return models.ExperienceBeginner
	}
}
