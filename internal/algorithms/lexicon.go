package algorithms

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Lexicon holds the word lists the analyzers match against. It is built once
// at startup and never mutated afterwards.
type Lexicon struct {
	StopWords      []string `yaml:"stop_words"`
	PositiveWords  []string `yaml:"positive_words"`
	NegativeWords  []string `yaml:"negative_words"`
	TechnicalTerms []string `yaml:"technical_terms"`
}

var defaultStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "could", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from", "further",
	"had", "has", "have", "having", "he", "her", "here", "hers", "herself",
	"him", "himself", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "may", "me", "might", "more", "most", "must", "my", "myself",
	"nor", "of", "on", "once", "only", "or", "other", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "same", "shall", "she", "should", "so",
	"some", "such", "than", "that", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those", "through",
	"to", "too", "under", "until", "up", "very", "was", "we", "were", "what",
	"when", "where", "which", "while", "who", "whom", "whose", "why", "will",
	"with", "would", "you", "your", "yours", "yourself", "yourselves",
}

var defaultPositiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"outstanding", "superb", "brilliant", "impressive", "love", "best",
	"beautiful", "perfect", "awesome", "helpful", "thank", "thanks",
	"appreciate", "happy", "pleased", "satisfied", "joy", "professional",
}

var defaultNegativeWords = []string{
	"bad", "poor", "terrible", "awful", "horrible", "disappointing",
	"frustrating", "mediocre", "worst", "waste", "unhappy", "disappointed",
	"issue", "problem", "fail", "failed", "failure", "error", "mistake",
	"unprofessional", "delay", "delayed", "late", "slow", "rude",
}

var defaultTechnicalTerms = []string{
	"implement", "develop", "design", "architecture", "framework", "system",
	"protocol", "interface", "algorithm", "function", "method", "analysis",
	"integration", "optimization", "project", "solution", "application",
}

// DefaultLexicon returns the built-in word lists.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		StopWords:      append([]string(nil), defaultStopWords...),
		PositiveWords:  append([]string(nil), defaultPositiveWords...),
		NegativeWords:  append([]string(nil), defaultNegativeWords...),
		TechnicalTerms: append([]string(nil), defaultTechnicalTerms...),
	}
}

// LoadLexicon reads word lists from a YAML file. Lists absent from the file
// keep their built-in values. An empty path returns DefaultLexicon.
func LoadLexicon(path string) (*Lexicon, error) {
	lex := DefaultLexicon()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	if len(override.StopWords) > 0 {
		lex.StopWords = override.StopWords
	}
	if len(override.PositiveWords) > 0 {
		lex.PositiveWords = override.PositiveWords
	}
	if len(override.NegativeWords) > 0 {
		lex.NegativeWords = override.NegativeWords
	}
	if len(override.TechnicalTerms) > 0 {
		lex.TechnicalTerms = override.TechnicalTerms
	}
	return lex, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
