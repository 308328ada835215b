// Package text holds the language-level analysis of post bodies: entity
// stripping, tokenization, readability grading, and lexicon sentiment.
package text

import (
	"regexp"
	"strings"

	"birdscope/internal/lexicon"
	"birdscope/internal/memo"
	"birdscope/internal/model"
)

var (
	// urlPattern tolerates bare domains and missing schemes or paths, so
	// shorteners like "x.co" in running text are still stripped.
	urlPattern     = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+|\b[a-z0-9][a-z0-9-]*(\.[a-z0-9-]+)*\.[a-z]{2,}(/\S*)?`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	hashtagPattern = regexp.MustCompile(`#\w+`)
	wordPattern    = regexp.MustCompile(`[\p{L}\p{N}'’]+`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// Normalizer turns raw post bodies into word tokens. Tokenization is the
// expensive repeated step, so it runs through the injected memo cache,
// keyed on the input text.
type Normalizer struct {
	stops *lexicon.StopWords
	words func(string) []string
}

// NewNormalizer builds a normalizer over the given stop-word list.
// The cache is owned by the caller so tests can inject a fresh one.
func NewNormalizer(stops *lexicon.StopWords, cache *memo.Cache) *Normalizer {
	return &Normalizer{
		stops: stops,
		words: memo.Wrap(cache, "tokenize", tokenizeWords),
	}
}

// EffectiveText resolves the text a post should be analyzed by: the origin
// post's body for reshare wrappers, the post's own body otherwise.
func (n *Normalizer) EffectiveText(p model.Post) string {
	return model.Origin(p).Text.Resolve()
}

// StripEntities removes URLs, @mentions, and #hashtags from text, leaving
// the prose used for grading and sentiment. Term ranking reads the
// un-stripped entities instead.
func (n *Normalizer) StripEntities(text string) string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = mentionPattern.ReplaceAllString(text, " ")
	text = hashtagPattern.ReplaceAllString(text, " ")
	return text
}

// CleanText is EffectiveText followed by StripEntities.
func (n *Normalizer) CleanText(p model.Post) string {
	return n.StripEntities(n.EffectiveText(p))
}

// Words tokenizes text into word tokens, dropping punctuation and
// contraction fragments. Results come from the memo cache; callers must
// not mutate the returned slice.
func (n *Normalizer) Words(text string) []string {
	return n.words(text)
}

// SignificantWords returns the post's vocabulary with stop words removed.
// Stop-word comparison is case-insensitive but the returned words keep
// their original casing.
func (n *Normalizer) SignificantWords(p model.Post) []string {
	var out []string
	for _, w := range n.Words(n.CleanText(p)) {
		if n.stops.Contains(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func tokenizeWords(text string) []string {
	var out []string
	for _, tok := range wordPattern.FindAllString(text, -1) {
		// contraction and possessive remnants carry no vocabulary signal
		if strings.ContainsAny(tok, "'’") {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// CollapseWhitespace trims and collapses runs of whitespace to one space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
