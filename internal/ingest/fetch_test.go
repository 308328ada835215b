package ingest

import (
	"context"
	"testing"
	"time"

	"birdscope/internal/store/timelinedb"
)

const stubPayload = `[
  {
    "id_str": "1",
    "created_at": "Wed Oct 10 20:19:24 +0000 2018",
    "full_text": "hello world",
    "entities": {"hashtags": [], "user_mentions": [], "urls": []},
    "user": {"screen_name": "ada", "created_at": "Mon Jan 02 00:00:00 +0000 2012"}
  }
]`

type stubSource struct {
	calls   int
	payload []byte
}

func (s *stubSource) UserTimelineRaw(ctx context.Context, handle string, count int) ([]byte, error) {
	s.calls++
	return s.payload, nil
}

func TestTimelineFetchesAndCaches(t *testing.T) {
	db, err := timelinedb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	src := &stubSource{payload: []byte(stubPayload)}
	f := NewFetcher(src, db, 15*time.Minute, 200)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	f.nowFn = func() time.Time { return now }

	posts, err := f.Timeline(context.Background(), "ada")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Author.Handle != "ada" {
		t.Fatalf("got %+v", posts)
	}
	if src.calls != 1 {
		t.Fatalf("expected 1 API call, got %d", src.calls)
	}

	// second load inside the TTL comes from the snapshot
	now = now.Add(5 * time.Minute)
	if _, err := f.Timeline(context.Background(), "ada"); err != nil {
		t.Fatal(err)
	}
	if src.calls != 1 {
		t.Fatalf("expected cached load, got %d API calls", src.calls)
	}

	// and a stale snapshot refetches
	now = now.Add(time.Hour)
	if _, err := f.Timeline(context.Background(), "ada"); err != nil {
		t.Fatal(err)
	}
	if src.calls != 2 {
		t.Fatalf("expected refetch, got %d API calls", src.calls)
	}
}

func TestTimelineWithoutStore(t *testing.T) {
	src := &stubSource{payload: []byte(stubPayload)}
	f := NewFetcher(src, nil, 0, 200)
	for i := 0; i < 2; i++ {
		if _, err := f.Timeline(context.Background(), "ada"); err != nil {
			t.Fatal(err)
		}
	}
	if src.calls != 2 {
		t.Fatalf("expected no caching, got %d calls", src.calls)
	}
}
