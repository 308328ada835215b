// Package lexicon loads the static word lists the analyzers depend on:
// a merged stop-word list and a word-valence sentiment lexicon. Both are
// read once at startup and immutable afterwards; they are passed into
// the analyzers rather than consulted as globals so tests can swap in
// small fixture lexicons.
package lexicon

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed data/stopwords_en.txt data/stopwords_web.txt
var stopwordFS embed.FS

//go:embed data/afinn.txt
var valenceData []byte

// StopWords is a case-insensitive set of words too common to be significant.
type StopWords struct {
	words map[string]struct{}
}

// Contains reports whether w is a stop word. The comparison is
// case-insensitive; callers pass words in their original casing.
func (s *StopWords) Contains(w string) bool {
	_, ok := s.words[strings.ToLower(w)]
	return ok
}

// Len returns the number of distinct stop words.
func (s *StopWords) Len() int { return len(s.words) }

// NewStopWords builds a set from explicit words. Intended for tests and
// callers with custom lists.
func NewStopWords(words ...string) *StopWords {
	s := &StopWords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// LoadStopWords merges the word-per-line files at the given paths into one
// set. With no paths it falls back to the embedded defaults.
func LoadStopWords(paths ...string) (*StopWords, error) {
	s := &StopWords{words: make(map[string]struct{})}
	if len(paths) == 0 {
		for _, name := range []string{"data/stopwords_en.txt", "data/stopwords_web.txt"} {
			b, err := stopwordFS.ReadFile(name)
			if err != nil {
				return nil, err
			}
			s.merge(b)
		}
		return s, nil
	}
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("stop words %s: %w", p, err)
		}
		s.merge(b)
	}
	return s, nil
}

func (s *StopWords) merge(b []byte) {
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s.words[w] = struct{}{}
	}
}

// Valences is a word-level sentiment lexicon: lowercase word to integer
// valence, negative for negative sentiment.
type Valences struct {
	scores map[string]int
}

// Score returns the valence of word, or 0 when the word is not in the
// lexicon. Lookup is case-insensitive.
func (v *Valences) Score(word string) int {
	return v.scores[strings.ToLower(word)]
}

// Len returns the number of scored words.
func (v *Valences) Len() int { return len(v.scores) }

// NewValences builds a lexicon from an explicit score table. Intended for
// tests and callers with custom lexicons.
func NewValences(scores map[string]int) *Valences {
	m := make(map[string]int, len(scores))
	for w, s := range scores {
		m[strings.ToLower(w)] = s
	}
	return &Valences{scores: m}
}

// LoadValences reads a tab-separated "word<TAB>score" lexicon from path.
// An empty path loads the embedded default.
func LoadValences(path string) (*Valences, error) {
	b := valenceData
	if path != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("valence lexicon %s: %w", path, err)
		}
	}
	v := &Valences{scores: make(map[string]int)}
	sc := bufio.NewScanner(bytes.NewReader(b))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		word, score, ok := strings.Cut(raw, "\t")
		if !ok {
			return nil, fmt.Errorf("valence lexicon line %d: missing tab separator", line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(score))
		if err != nil {
			return nil, fmt.Errorf("valence lexicon line %d: %w", line, err)
		}
		v.scores[strings.ToLower(strings.TrimSpace(word))] = n
	}
	return v, sc.Err()
}
