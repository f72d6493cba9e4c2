package algorithms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment(t *testing.T) {
	a := NewAnalyzer(nil)

	cases := []struct {
		name  string
		text  string
		score float64
		label SentimentLabel
	}{
		{"empty", "", 5.0, SentimentNeutral},
		{"no lexicon words", "the package arrived on tuesday", 5.0, SentimentNeutral},
		{"positive", "This is great and wonderful, truly amazing", 9.5, SentimentPositive},
		{"positive capped", "great great great great", 10, SentimentPositive},
		{"negative", "bad and slow", 2.0, SentimentNegative},
		{"negative floored", "bad bad bad bad", 1.0, SentimentNegative},
		{"mixed", "great work but slow", 5.5, SentimentMixed},
		{"whole words only", "goodness badge", 5.0, SentimentNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := a.AnalyzeSentiment(tc.text)
			assert.Equal(t, tc.score, res.Score)
			assert.Equal(t, tc.label, res.Label)
			assert.NotEmpty(t, res.Analysis)
		})
	}
}

func TestAnalyzeContentQuality(t *testing.T) {
	a := NewAnalyzer(nil)

	t.Run("empty and blank", func(t *testing.T) {
		assert.Equal(t, 0.0, a.AnalyzeContentQuality(""))
		assert.Equal(t, 0.0, a.AnalyzeContentQuality("   \n\t"))
	})

	t.Run("short text loses a point", func(t *testing.T) {
		assert.Equal(t, 4.0, a.AnalyzeContentQuality("short text"))
	})

	t.Run("technical vocabulary", func(t *testing.T) {
		assert.Equal(t, 5.0, a.AnalyzeContentQuality("We implement APIs"))
	})

	t.Run("long structured text", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("Short one. This sentence has five words. ")
		b.WriteString("Here is a somewhat longer sentence with more words in it!\n")
		b.WriteString("- first item\n")
		b.WriteString(strings.Repeat("word ", 60))
		b.WriteString("and the system architecture.")
		// 5 base, +1 length in [50,200), +1 sentence variety, +1 list, +1 technical
		assert.Equal(t, 9.0, a.AnalyzeContentQuality(b.String()))
	})

	t.Run("always within range", func(t *testing.T) {
		for _, text := range []string{"x", strings.Repeat("design. ", 500), "1. a\n* b\n- c"} {
			s := a.AnalyzeContentQuality(text)
			assert.GreaterOrEqual(t, s, 1.0)
			assert.LessOrEqual(t, s, 10.0)
		}
	})
}

func TestMediaQualityScore(t *testing.T) {
	assert.Equal(t, 0.0, MediaQualityScore(nil))
	assert.Equal(t, 1.5, MediaQualityScore([]string{"https://cdn/a.jpg"}))
	assert.Equal(t, 2.5, MediaQualityScore([]string{"https://cdn/a.MP4"}))
	assert.Equal(t, 5.0, MediaQualityScore([]string{"https://youtube.com/watch?v=1", "https://vimeo.com/2"}))

	t.Run("monotonic up to the cap", func(t *testing.T) {
		prev := 0.0
		urls := []string{}
		for i := 0; i < 12; i++ {
			urls = append(urls, "https://cdn/img.png")
			s := MediaQualityScore(urls)
			assert.GreaterOrEqual(t, s, prev)
			assert.LessOrEqual(t, s, 10.0)
			prev = s
		}
		assert.Equal(t, 8.0, prev)
	})

	t.Run("video bonus capped at two", func(t *testing.T) {
		urls := []string{"a.mp4", "b.mov", "c.mp4", "d.mov", "e.mp4", "f.mp4"}
		assert.Equal(t, 10.0, MediaQualityScore(urls))
	})
}

func TestAnalyzeSkillMatch(t *testing.T) {
	a := NewAnalyzer(nil)

	t.Run("neutral when nothing to compare", func(t *testing.T) {
		assert.Equal(t, 5.0, a.AnalyzeSkillMatch(JobText{Title: "Designer"}, CandidateText{}))
	})

	t.Run("partial overlap", func(t *testing.T) {
		job := JobText{Title: "Go developer", Requirements: "golang postgres"}
		cand := CandidateText{Skills: "golang, postgres, docker"}
		assert.Equal(t, 8.3, a.AnalyzeSkillMatch(job, cand))
	})

	t.Run("substring either way counts", func(t *testing.T) {
		job := JobText{Requirements: "react"}
		cand := CandidateText{Bio: "reactjs specialist"}
		assert.Equal(t, 10.0, a.AnalyzeSkillMatch(job, cand))
	})

	t.Run("no overlap stays at five", func(t *testing.T) {
		job := JobText{Requirements: "photography"}
		cand := CandidateText{Skills: "accounting"}
		assert.Equal(t, 5.0, a.AnalyzeSkillMatch(job, cand))
	})

	t.Run("keyword density bonus", func(t *testing.T) {
		var skills []string
		for i := 0; i < 31; i++ {
			skills = append(skills, "skill"+string(rune('a'+i%26))+string(rune('a'+i/26)))
		}
		job := JobText{Requirements: "photography"}
		cand := CandidateText{Skills: strings.Join(skills, " ")}
		assert.Equal(t, 5.5, a.AnalyzeSkillMatch(job, cand))
	})
}
