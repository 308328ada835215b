package xclient

import (
	"strings"
	"testing"
	"time"
)

const timelineFixture = `[
  {
    "id_str": "1001",
    "created_at": "Wed Oct 10 20:19:24 +0000 2018",
    "full_text": "Just setting up my analyzer #golang @pair https://t.co/abc",
    "truncated": false,
    "entities": {
      "hashtags": [{"text": "golang"}],
      "user_mentions": [{"screen_name": "pair"}],
      "urls": [{"expanded_url": "https://example.com/post"}]
    },
    "user": {
      "name": "Test User",
      "screen_name": "testuser",
      "description": "bio here",
      "location": "Earth",
      "url": "https://example.com",
      "profile_image_url_https": "https://img.example.com/a.png",
      "verified": true,
      "followers_count": 42,
      "friends_count": 7,
      "created_at": "Mon Jan 02 00:00:00 +0000 2012"
    },
    "retweet_count": 3,
    "favorite_count": 9
  },
  {
    "id_str": "1000",
    "created_at": "Tue Oct 09 08:00:00 +0000 2018",
    "text": "RT @other: original words here…",
    "truncated": true,
    "entities": {"hashtags": [], "user_mentions": [{"screen_name": "other"}], "urls": []},
    "user": {"screen_name": "testuser", "created_at": "Mon Jan 02 00:00:00 +0000 2012"},
    "retweeted_status": {
      "id_str": "900",
      "created_at": "Mon Oct 08 12:00:00 +0000 2018",
      "full_text": "original words here, in full",
      "entities": {"hashtags": [], "user_mentions": [], "urls": []},
      "user": {"screen_name": "other", "created_at": "Mon Jan 02 00:00:00 +0000 2012"},
      "retweet_count": 50,
      "favorite_count": 200
    },
    "retweet_count": 50,
    "favorite_count": 0
  }
]`

func TestDecodeTimeline(t *testing.T) {
	posts, err := DecodeTimeline([]byte(timelineFixture))
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts", len(posts))
	}

	p := posts[0]
	if !p.Text.Extended() || !strings.HasPrefix(p.Text.Resolve(), "Just setting up") {
		t.Fatalf("text wrong: %+v", p.Text)
	}
	if p.CreatedAt != time.Date(2018, 10, 10, 20, 19, 24, 0, time.UTC) {
		t.Fatalf("created at %v", p.CreatedAt)
	}
	if p.Author.Handle != "testuser" || !p.Author.Verified || p.Author.FollowersCount != 42 {
		t.Fatalf("author wrong: %+v", p.Author)
	}
	if p.Author.CreatedAt.Year() != 2012 {
		t.Fatalf("author joined %v", p.Author.CreatedAt)
	}
	if len(p.Entities.Hashtags) != 1 || p.Entities.Hashtags[0] != "golang" {
		t.Fatalf("hashtags %v", p.Entities.Hashtags)
	}
	if len(p.Entities.URLs) != 1 || p.Entities.URLs[0] != "https://example.com/post" {
		t.Fatalf("urls %v", p.Entities.URLs)
	}
	if p.Favorites != 9 || p.Retweets != 3 {
		t.Fatalf("engagement %d/%d", p.Favorites, p.Retweets)
	}

	rt := posts[1]
	if rt.Text.Extended() {
		t.Fatal("truncated wrapper misread as extended")
	}
	if rt.Retweeted == nil {
		t.Fatal("missing origin post")
	}
	if rt.Retweeted.Author.Handle != "other" || rt.Retweeted.Favorites != 200 {
		t.Fatalf("origin wrong: %+v", rt.Retweeted)
	}
	if !rt.Retweeted.Text.Extended() {
		t.Fatal("origin should carry extended text")
	}
}

func TestDecodeTimelineRejectsBadTimestamp(t *testing.T) {
	_, err := DecodeTimeline([]byte(`[{"id_str":"1","created_at":"not a date","entities":{},"user":{}}]`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidHandle(t *testing.T) {
	valid := []string{"jack", "a", "user_name", "ABC123", "exactly15chars_"}
	for _, h := range valid {
		if !ValidHandle(h) {
			t.Fatalf("%q should be valid", h)
		}
	}
	invalid := []string{"", "way_too_long_for_twitter", "has space", "semi;colon", "dash-name", "@jack"}
	for _, h := range invalid {
		if ValidHandle(h) {
			t.Fatalf("%q should be invalid", h)
		}
	}
}
