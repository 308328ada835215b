package analyze

import (
	"sort"

	"birdscope/internal/model"
)

// TermRule extracts zero or more terms from one post, e.g. its hashtags.
type TermRule func(model.Post) []string

// TopTerms applies rule to every post, counts the flattened terms, and
// returns the n most frequent with their counts. Ties break by first-seen
// order across the newest-first collection, which keeps rankings
// reproducible for equal counts.
func TopTerms(posts []model.Post, rule TermRule, n int) []model.TermOccurrence {
	var all []string
	for _, p := range posts {
		all = append(all, rule(p)...)
	}
	counts := CountValues(all)

	firstSeen := make(map[string]int, len(counts))
	for i, term := range all {
		if _, ok := firstSeen[term]; !ok {
			firstSeen[term] = i
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		ci, cj := counts[terms[i]], counts[terms[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	out := make([]model.TermOccurrence, len(terms))
	for i, term := range terms {
		out[i] = model.TermOccurrence{Term: term, Occurrences: counts[term]}
	}
	return out
}

// HashtagTerms returns a post's hashtags with their # prefix.
func HashtagTerms(p model.Post) []string {
	out := make([]string, 0, len(p.Entities.Hashtags))
	for _, h := range p.Entities.Hashtags {
		out = append(out, "#"+h)
	}
	return out
}

// MentionTerms returns a post's mentioned handles with their @ prefix.
func MentionTerms(p model.Post) []string {
	out := make([]string, 0, len(p.Entities.Mentions))
	for _, m := range p.Entities.Mentions {
		out = append(out, "@"+m)
	}
	return out
}

// RetweetedFromTerms returns the origin author's handle when the post is a
// reshare, nothing otherwise.
func RetweetedFromTerms(p model.Post) []string {
	if p.Retweeted == nil {
		return nil
	}
	return []string{"@" + p.Retweeted.Author.Handle}
}
