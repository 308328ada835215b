package text

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"birdscope/internal/model"
)

// Gates below which a grade estimate is meaningless for a short post.
const (
	minWords     = 2
	minSentences = 1
	minSyllables = 5
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// ReadabilityScorer estimates a Flesch-Kincaid grade level for post text
// that has already had its entities stripped.
type ReadabilityScorer struct {
	norm *Normalizer
}

// NewReadabilityScorer builds a scorer over the shared normalizer.
func NewReadabilityScorer(norm *Normalizer) *ReadabilityScorer {
	return &ReadabilityScorer{norm: norm}
}

// Score grades one stripped text. ok is false when the text fails the
// minimum-content gates; such posts are excluded from averages rather
// than counted as grade zero.
func (r *ReadabilityScorer) Score(text string) (grade float64, ok bool) {
	words := r.norm.Words(text)
	sentences := sentenceCount(text)
	syllables := 0
	for _, w := range words {
		syllables += syllablesInWord(w)
	}
	if len(words) < minWords || sentences < minSentences || syllables < minSyllables {
		return 0, false
	}
	grade = 0.39*(float64(len(words))/float64(sentences)) +
		11.8*(float64(syllables)/float64(len(words))) - 15.59
	if grade < 1 {
		grade = 1
	}
	return grade, true
}

// AverageGrade grades every post's origin-resolved, entity-stripped text
// and returns the mean of the defined scores rounded to the nearest
// integer. ok is false when no post passed the gates.
func (r *ReadabilityScorer) AverageGrade(posts []model.Post) (int, bool) {
	sum := 0.0
	n := 0
	for _, p := range posts {
		if g, ok := r.Score(r.norm.CleanText(p)); ok {
			sum += g
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return int(math.Round(sum / float64(n))), true
}

// sentenceCount counts sentence segments with actual content. Text without
// terminal punctuation still counts as one sentence.
func sentenceCount(text string) int {
	n := 0
	for _, seg := range sentenceSplit.Split(text, -1) {
		if hasContent(seg) {
			n++
		}
	}
	return n
}

func hasContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// syllablesInWord estimates syllables by counting vowel groups, with a
// silent-e adjustment. Every word counts as at least one syllable.
func syllablesInWord(w string) int {
	w = strings.ToLower(w)
	count := 0
	prevVowel := false
	for _, r := range w {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
