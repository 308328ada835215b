package text

import (
	"math"
	"testing"

	"birdscope/internal/lexicon"
	"birdscope/internal/model"
)

func newTestSentiment(norm *Normalizer) *SentimentScorer {
	return NewSentimentScorer(lexicon.NewValences(map[string]int{
		"good": 3, "bad": -3, "awful": -4,
	}), norm)
}

func TestComparativeNormalizesByTokenCount(t *testing.T) {
	n := newTestNormalizer()
	s := newTestSentiment(n)
	// one scored word among four tokens
	got := s.Comparative("this tool is good")
	if got != 0.75 {
		t.Fatalf("got %f, want 0.75", got)
	}
}

func TestComparativeEmptyTextIsZero(t *testing.T) {
	s := newTestSentiment(newTestNormalizer())
	if got := s.Comparative(""); got != 0 {
		t.Fatalf("got %f", got)
	}
	if got := s.Comparative("neutral words only"); got != 0 {
		t.Fatalf("got %f", got)
	}
}

func TestAverageScoresOriginText(t *testing.T) {
	n := newTestNormalizer()
	s := newTestSentiment(n)
	origin := model.Post{Text: model.ExtendedText("good good")}
	posts := []model.Post{
		{Text: model.TruncatedText("awful awful"), Retweeted: &origin},
		{Text: model.TruncatedText("bad")},
	}
	// reshare scores the origin text (+3), not the wrapper (-4)
	got := s.Average(posts)
	if math.Abs(got-0.0) > 1e-9 {
		t.Fatalf("got %f, want 0.0", got)
	}
}

func TestAverageEveryPostContributes(t *testing.T) {
	n := newTestNormalizer()
	s := newTestSentiment(n)
	posts := []model.Post{
		{Text: model.TruncatedText("good")},
		{Text: model.TruncatedText("completely neutral filler")},
	}
	if got := s.Average(posts); got != 1.5 {
		t.Fatalf("got %f, want 1.5", got)
	}
}
