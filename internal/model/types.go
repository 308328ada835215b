package model

import "time"

// Author represents the subset of X user fields the report needs.
type Author struct {
	Name           string
	Handle         string
	Bio            string
	Location       string
	URL            string
	AvatarURL      string
	Verified       bool
	FollowersCount int
	FollowingCount int
	CreatedAt      time.Time
}

// Entities are the structured sub-spans the API extracted from a post's text.
// Hashtags and Mentions are stored without their # and @ prefixes.
type Entities struct {
	Hashtags []string
	Mentions []string
	URLs     []string
}

// Count returns the total number of entities in the post.
func (e Entities) Count() int {
	return len(e.Hashtags) + len(e.Mentions) + len(e.URLs)
}

// PostText is a post body as delivered by the API: either the classic
// truncated form or the extended full form. Code must read it through
// Resolve and never care which variant it holds.
type PostText struct {
	text     string
	extended bool
}

// TruncatedText wraps a possibly truncated post body.
func TruncatedText(s string) PostText { return PostText{text: s} }

// ExtendedText wraps a full, untruncated post body.
func ExtendedText(s string) PostText { return PostText{text: s, extended: true} }

// Resolve returns the effective body. The constructors guarantee the
// extended form wins whenever the API supplied one.
func (t PostText) Resolve() string { return t.text }

// Extended reports whether the body came from the extended form.
func (t PostText) Extended() bool { return t.extended }

// Post is one unit of user content with its engagement counters.
// Posts arrive from the timeline newest-first and are never mutated.
type Post struct {
	ID        string
	CreatedAt time.Time
	Text      PostText
	Author    Author
	Entities  Entities
	// Retweeted is the origin post when this post is a reshare wrapper.
	Retweeted *Post
	Favorites int
	Retweets  int
}

// Origin returns the post whose text and engagement analysis should read:
// the retweeted post for reshare wrappers, the post itself otherwise.
func Origin(p Post) Post {
	if p.Retweeted != nil {
		return *p.Retweeted
	}
	return p
}
