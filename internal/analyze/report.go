package analyze

import (
	"errors"
	"math"

	"birdscope/internal/lexicon"
	"birdscope/internal/memo"
	"birdscope/internal/model"
	"birdscope/internal/text"
)

// ErrNoPosts is returned for an empty timeline. It is about the subject's
// data, not a transient fault, so callers surface it instead of retrying.
var ErrNoPosts = errors.New("this user hasn't posted anything to analyze")

// topTermCount is how many series each term-usage graph carries.
const topTermCount = 5

// Analyzer assembles the report. It owns no algorithm of its own; it wires
// the rankers, graph builders, and text scorers with the per-field rules.
type Analyzer struct {
	norm        *text.Normalizer
	readability *text.ReadabilityScorer
	sentiment   *text.SentimentScorer
}

// New builds an analyzer over the given lexical resources. The memo cache
// is shared across reports for the life of the process.
func New(stops *lexicon.StopWords, valences *lexicon.Valences, cache *memo.Cache) *Analyzer {
	norm := text.NewNormalizer(stops, cache)
	return &Analyzer{
		norm:        norm,
		readability: text.NewReadabilityScorer(norm),
		sentiment:   text.NewSentimentScorer(valences, norm),
	}
}

// Report analyzes a newest-first post collection into the full report.
func (a *Analyzer) Report(posts []model.Post) (model.Report, error) {
	if len(posts) == 0 {
		return model.Report{}, ErrNoPosts
	}

	significantWords := func(p model.Post) []string { return a.norm.SignificantWords(p) }

	r := model.Report{
		Profile:       profileOf(posts[0].Author),
		PostsPerMonth: PerMonthGraph(posts),
		Engagement: []model.LabeledSeries{
			{Label: "Likes", Points: PerPostGraph(posts, likesMetric)},
			{Label: "Retweets", Points: PerPostGraph(posts, retweetsMetric)},
		},
		TopHashtags:  CumulativeTermGraphs(posts, HashtagTerms, topTermCount),
		TopMentions:  CumulativeTermGraphs(posts, MentionTerms, topTermCount),
		TopRetweeted: CumulativeTermGraphs(posts, RetweetedFromTerms, topTermCount),
		TopWords:     CumulativeTermGraphs(posts, significantWords, topTermCount),

		AverageLength:   a.averageLength(posts),
		Sentiment:       a.sentiment.Average(posts),
		AverageEntities: averageEntities(posts),
	}
	if grade, ok := a.readability.AverageGrade(posts); ok {
		r.ReadingGradeLevel = &grade
	}
	return r, nil
}

// likesMetric reads the origin post's favorites for reshares, so a
// retweet shows what the retweeted post earned rather than zero.
func likesMetric(p model.Post) float64 {
	return float64(model.Origin(p).Favorites)
}

func retweetsMetric(p model.Post) float64 {
	return float64(p.Retweets)
}

func (a *Analyzer) averageLength(posts []model.Post) int {
	sum := 0
	for _, p := range posts {
		sum += len([]rune(a.norm.EffectiveText(p)))
	}
	return int(math.Round(float64(sum) / float64(len(posts))))
}

func averageEntities(posts []model.Post) float64 {
	sum := 0
	for _, p := range posts {
		sum += p.Entities.Count()
	}
	return math.Round(float64(sum)/float64(len(posts))*100) / 100
}

func profileOf(u model.Author) model.Profile {
	return model.Profile{
		Name:       u.Name,
		Handle:     u.Handle,
		Bio:        u.Bio,
		Location:   u.Location,
		URL:        u.URL,
		AvatarURL:  u.AvatarURL,
		Verified:   u.Verified,
		Followers:  u.FollowersCount,
		Following:  u.FollowingCount,
		YearJoined: u.CreatedAt.Year(),
	}
}
