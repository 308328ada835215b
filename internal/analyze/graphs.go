package analyze

import (
	"sort"
	"time"

	"birdscope/internal/model"
)

// Metric maps one post to its y value on a per-post graph.
type Metric func(model.Post) float64

// PerMonthGraph buckets posts by calendar month of creation and returns
// one point per month that has at least one post, oldest month first.
func PerMonthGraph(posts []model.Post) model.Graph {
	// Plain map here, not CountValues: a bucket at the Unix epoch is a
	// real month, not an absent value.
	counts := make(map[int64]int, len(posts))
	for _, p := range posts {
		counts[monthStart(p.CreatedAt).UnixMilli()]++
	}
	graph := make(model.Graph, 0, len(counts))
	for month, n := range counts {
		graph = append(graph, model.GraphPoint{Date: month, Value: float64(n)})
	}
	sort.Slice(graph, func(i, j int) bool { return graph[i].Date < graph[j].Date })
	return graph
}

// PerPostGraph emits one (timestamp, metric) point per post, in the
// collection's own order.
func PerPostGraph(posts []model.Post, metric Metric) model.Graph {
	graph := make(model.Graph, 0, len(posts))
	for _, p := range posts {
		graph = append(graph, model.GraphPoint{Date: p.CreatedAt.UnixMilli(), Value: metric(p)})
	}
	return graph
}

// CumulativeTermGraphs ranks the top n terms under rule and, for each,
// builds the running count of posts using that term in chronological
// order. The input is newest-first, so accumulation walks it backwards;
// the first use starts the series at 1.
func CumulativeTermGraphs(posts []model.Post, rule TermRule, n int) model.MultiLineGraph {
	top := TopTerms(posts, rule, n)
	out := make(model.MultiLineGraph, 0, len(top))
	for _, tc := range top {
		var points model.Graph
		for i := len(posts) - 1; i >= 0; i-- {
			p := posts[i]
			if !usesTerm(rule(p), tc.Term) {
				continue
			}
			points = append(points, model.GraphPoint{
				Date:  p.CreatedAt.UnixMilli(),
				Value: float64(len(points) + 1),
			})
		}
		out = append(out, model.TermSeries{Term: tc.Term, Points: points})
	}
	return out
}

func usesTerm(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
