package model

// GraphPoint is one (timestamp, value) pair. Date is unix milliseconds so
// the frontend can feed it straight into its charting library.
type GraphPoint struct {
	Date  int64   `json:"date"`
	Value float64 `json:"value"`
}

// Graph is an ordered series of points.
type Graph []GraphPoint

// TermSeries is one term's usage curve.
type TermSeries struct {
	Term   string `json:"term"`
	Points Graph  `json:"points"`
}

// MultiLineGraph holds one series per term.
type MultiLineGraph []TermSeries

// LabeledSeries is a named metric series, e.g. "Likes" over the timeline.
type LabeledSeries struct {
	Label  string `json:"label"`
	Points Graph  `json:"points"`
}

// TermOccurrence is a ranked term with its occurrence count.
type TermOccurrence struct {
	Term        string `json:"term"`
	Occurrences int    `json:"occurrences"`
}

// Profile is the subject's account summary, taken from the newest post's
// embedded author record.
type Profile struct {
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	Bio        string `json:"bio,omitempty"`
	Location   string `json:"location,omitempty"`
	URL        string `json:"url,omitempty"`
	AvatarURL  string `json:"avatarUrl"`
	Verified   bool   `json:"verified"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	YearJoined int    `json:"yearJoined"`
}

// Report is the full analytics response for one handle.
//
// ReadingGradeLevel is nil when no post passed the readability gates
// (for example a media-only account); the field is omitted rather than
// reported as a meaningless zero.
type Report struct {
	Profile       Profile         `json:"profile"`
	PostsPerMonth Graph           `json:"postsPerMonth"`
	Engagement    []LabeledSeries `json:"engagement"`
	TopHashtags   MultiLineGraph  `json:"topHashtags"`
	TopMentions   MultiLineGraph  `json:"topMentions"`
	TopRetweeted  MultiLineGraph  `json:"topRetweeted"`
	TopWords      MultiLineGraph  `json:"topWords"`

	AverageLength     int     `json:"averageLength"`
	ReadingGradeLevel *int    `json:"readingGradeLevel,omitempty"`
	Sentiment         float64 `json:"sentiment"`
	AverageEntities   float64 `json:"averageEntities"`
}
