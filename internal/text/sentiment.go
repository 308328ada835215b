package text

import (
	"math"

	"birdscope/internal/lexicon"
	"birdscope/internal/model"
)

// SentimentScorer computes length-normalized polarity from a word-valence
// lexicon. An empty or lexicon-free text scores 0, and unlike readability
// there is no gating: every post contributes to the average.
type SentimentScorer struct {
	lex  *lexicon.Valences
	norm *Normalizer
}

// NewSentimentScorer builds a scorer over the shared normalizer and lexicon.
func NewSentimentScorer(lex *lexicon.Valences, norm *Normalizer) *SentimentScorer {
	return &SentimentScorer{lex: lex, norm: norm}
}

// Comparative returns the sum of per-word valences divided by the token
// count of the stripped text.
func (s *SentimentScorer) Comparative(text string) float64 {
	words := s.norm.Words(text)
	if len(words) == 0 {
		return 0
	}
	sum := 0
	for _, w := range words {
		sum += s.lex.Score(w)
	}
	return float64(sum) / float64(len(words))
}

// Average returns the mean comparative score across all posts'
// origin-resolved, entity-stripped text, rounded to two decimals.
func (s *SentimentScorer) Average(posts []model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range posts {
		sum += s.Comparative(s.norm.CleanText(p))
	}
	return math.Round(sum/float64(len(posts))*100) / 100
}
