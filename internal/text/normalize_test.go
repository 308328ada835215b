package text

import (
	"reflect"
	"strings"
	"testing"

	"birdscope/internal/lexicon"
	"birdscope/internal/memo"
	"birdscope/internal/model"
)

func newTestNormalizer(stops ...string) *Normalizer {
	return NewNormalizer(lexicon.NewStopWords(stops...), memo.New())
}

func TestStripEntitiesRemovesAllEntityTokens(t *testing.T) {
	n := newTestNormalizer()
	got := n.StripEntities("Check this out @bob #fun http://x.co")
	for _, banned := range []string{"@", "#", "bob", "fun", "x.co", "http"} {
		if strings.Contains(got, banned) {
			t.Fatalf("stripped text still contains %q: %q", banned, got)
		}
	}
	if CollapseWhitespace(got) != "Check this out" {
		t.Fatalf("expected prose to survive, got %q", got)
	}
}

func TestStripEntitiesHandlesSchemelessURLs(t *testing.T) {
	n := newTestNormalizer()
	cases := []string{
		"see example.com for details",
		"see www.example.com/path?q=1 for details",
		"see https://sub.example.co.uk/a/b for details",
	}
	for _, c := range cases {
		got := CollapseWhitespace(n.StripEntities(c))
		if got != "see for details" {
			t.Fatalf("%q: got %q", c, got)
		}
	}
}

func TestWordsDropsContractionFragments(t *testing.T) {
	n := newTestNormalizer()
	got := n.Words("don't stop Bob's code, it works")
	want := []string{"stop", "code", "it", "works"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWordsDropsPunctuation(t *testing.T) {
	n := newTestNormalizer()
	got := n.Words("one, two... three!!!")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSignificantWordsFiltersCaseInsensitively(t *testing.T) {
	n := newTestNormalizer("the", "a")
	p := model.Post{Text: model.TruncatedText("The Compiler rejected a bad Program")}
	got := n.SignificantWords(p)
	want := []string{"Compiler", "rejected", "bad", "Program"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEffectiveTextPrefersOriginPost(t *testing.T) {
	n := newTestNormalizer()
	origin := model.Post{Text: model.ExtendedText("the original words")}
	wrapper := model.Post{
		Text:      model.TruncatedText("RT @x: the orig…"),
		Retweeted: &origin,
	}
	if got := n.EffectiveText(wrapper); got != "the original words" {
		t.Fatalf("got %q", got)
	}
	if got := n.EffectiveText(origin); got != "the original words" {
		t.Fatalf("got %q", got)
	}
}

func TestWordsAreMemoized(t *testing.T) {
	cache := memo.New()
	n := NewNormalizer(lexicon.NewStopWords(), cache)
	a := n.Words("some repeated text")
	b := n.Words("some repeated text")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("memoized results differ: %v vs %v", a, b)
	}
	if hits, misses := cache.Stats(); hits != 1 || misses != 1 {
		t.Fatalf("expected 1 hit / 1 miss, got %d / %d", hits, misses)
	}
}
