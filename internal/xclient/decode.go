package xclient

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"birdscope/internal/model"
)

var handlePattern = regexp.MustCompile(`^\w+$`)

// ValidHandle reports whether h could be a real X handle.
func ValidHandle(h string) bool {
	return h != "" && len(h) <= 15 && handlePattern.MatchString(h)
}

// apiTweet is the v1.1 wire shape. In extended mode the body arrives in
// full_text; older payloads carry text.
type apiTweet struct {
	IDStr     string `json:"id_str"`
	CreatedAt string `json:"created_at"`
	Text      string `json:"text"`
	FullText  string `json:"full_text"`
	Entities  struct {
		Hashtags []struct {
			Text string `json:"text"`
		} `json:"hashtags"`
		UserMentions []struct {
			ScreenName string `json:"screen_name"`
		} `json:"user_mentions"`
		URLs []struct {
			ExpandedURL string `json:"expanded_url"`
		} `json:"urls"`
	} `json:"entities"`
	User            apiUser   `json:"user"`
	RetweetedStatus *apiTweet `json:"retweeted_status"`
	RetweetCount    int       `json:"retweet_count"`
	FavoriteCount   int       `json:"favorite_count"`
}

type apiUser struct {
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	URL             string `json:"url"`
	ProfileImageURL string `json:"profile_image_url_https"`
	Verified        bool   `json:"verified"`
	FollowersCount  int    `json:"followers_count"`
	FriendsCount    int    `json:"friends_count"`
	CreatedAt       string `json:"created_at"`
}

// DecodeTimeline parses a raw v1.1 user_timeline payload into posts,
// preserving the API's newest-first order.
func DecodeTimeline(data []byte) ([]model.Post, error) {
	var raw []apiTweet
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	out := make([]model.Post, 0, len(raw))
	for i := range raw {
		p, err := mapTweet(&raw[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func mapTweet(t *apiTweet) (model.Post, error) {
	created, err := time.Parse(time.RubyDate, t.CreatedAt)
	if err != nil {
		return model.Post{}, fmt.Errorf("tweet %s: bad created_at %q: %w", t.IDStr, t.CreatedAt, err)
	}
	p := model.Post{
		ID:        t.IDStr,
		CreatedAt: created.UTC(),
		Text:      mapText(t),
		Author:    mapUser(t.User),
		Favorites: t.FavoriteCount,
		Retweets:  t.RetweetCount,
	}
	for _, h := range t.Entities.Hashtags {
		p.Entities.Hashtags = append(p.Entities.Hashtags, h.Text)
	}
	for _, m := range t.Entities.UserMentions {
		p.Entities.Mentions = append(p.Entities.Mentions, m.ScreenName)
	}
	for _, u := range t.Entities.URLs {
		p.Entities.URLs = append(p.Entities.URLs, u.ExpandedURL)
	}
	if t.RetweetedStatus != nil {
		origin, err := mapTweet(t.RetweetedStatus)
		if err != nil {
			return model.Post{}, err
		}
		p.Retweeted = &origin
	}
	return p, nil
}

func mapText(t *apiTweet) model.PostText {
	if t.FullText != "" {
		return model.ExtendedText(t.FullText)
	}
	return model.TruncatedText(t.Text)
}

func mapUser(u apiUser) model.Author {
	joined, err := time.Parse(time.RubyDate, u.CreatedAt)
	if err != nil {
		joined = time.Time{}
	}
	return model.Author{
		Name:           u.Name,
		Handle:         u.ScreenName,
		Bio:            u.Description,
		Location:       u.Location,
		URL:            u.URL,
		AvatarURL:      u.ProfileImageURL,
		Verified:       u.Verified,
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FriendsCount,
		CreatedAt:      joined.UTC(),
	}
}
