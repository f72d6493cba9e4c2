package algorithms

type SentimentLabel string

const (
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentMixed    SentimentLabel = "mixed"
)

type SentimentResult struct {
	Score    float64        `json:"score"`
	Label    SentimentLabel `json:"sentiment"`
	Analysis string         `json:"analysis"`
}

var sentimentAnalysis = map[SentimentLabel]string{
	SentimentNeutral:  "Neutral sentiment detected with no strong positive or negative indicators.",
	SentimentPositive: "Positive sentiment detected, expressing satisfaction and approval.",
	SentimentNegative: "Negative sentiment detected, expressing dissatisfaction or concerns.",
	SentimentMixed:    "Mixed sentiment detected with both positive and negative elements.",
}

// AnalyzeSentiment scores text in [1,10] by counting whole-word hits
// against the positive and negative lists.
func (a *Analyzer) AnalyzeSentiment(text string) SentimentResult {
	var pos, neg int
	for _, w := range words(text) {
		if _, ok := a.positive[w]; ok {
			pos++
		}
		if _, ok := a.negative[w]; ok {
			neg++
		}
	}

	var score float64
	var label SentimentLabel
	switch {
	case pos == 0 && neg == 0:
		score, label = 5, SentimentNeutral
	case neg == 0:
		score, label = min(5+float64(pos)*1.5, 10), SentimentPositive
	case pos == 0:
		score, label = max(5-float64(neg)*1.5, 1), SentimentNegative
	default:
		score, label = 1+float64(pos)/float64(pos+neg)*9, SentimentMixed
	}

	return SentimentResult{
		Score:    Round1(score),
		Label:    label,
		Analysis: sentimentAnalysis[label],
	}
}
