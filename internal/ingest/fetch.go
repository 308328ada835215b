// Package ingest loads a handle's recent timeline, consulting the local
// snapshot store before hitting the API.
package ingest

import (
	"context"
	"time"

	"birdscope/internal/logging"
	"birdscope/internal/metrics"
	"birdscope/internal/model"
	"birdscope/internal/store/timelinedb"
	"birdscope/internal/xclient"
)

// Source fetches a raw timeline payload from the upstream API.
type Source interface {
	UserTimelineRaw(ctx context.Context, handle string, count int) ([]byte, error)
}

// Fetcher resolves timelines through an optional snapshot cache.
// A nil db disables caching entirely.
type Fetcher struct {
	src   Source
	db    *timelinedb.DB
	ttl   time.Duration
	count int
	nowFn func() time.Time
}

// NewFetcher builds a fetcher requesting count posts per timeline and
// treating snapshots younger than ttl as fresh.
func NewFetcher(src Source, db *timelinedb.DB, ttl time.Duration, count int) *Fetcher {
	return &Fetcher{src: src, db: db, ttl: ttl, count: count, nowFn: time.Now}
}

// Timeline returns the handle's recent posts, newest first.
func (f *Fetcher) Timeline(ctx context.Context, handle string) ([]model.Post, error) {
	if f.db != nil && f.ttl > 0 {
		payload, ok, err := f.db.LoadTimeline(ctx, handle, f.ttl, f.nowFn())
		if err != nil {
			logging.Warn("snapshot_load_failed", map[string]any{"handle": handle, "error": err.Error()})
		} else if ok {
			metrics.IncTimelineFetch("cache")
			return xclient.DecodeTimeline(payload)
		}
	}
	payload, err := f.src.UserTimelineRaw(ctx, handle, f.count)
	if err != nil {
		return nil, err
	}
	posts, err := xclient.DecodeTimeline(payload)
	if err != nil {
		return nil, err
	}
	metrics.IncTimelineFetch("api")
	if f.db != nil {
		if err := f.db.SaveTimeline(ctx, handle, f.nowFn(), payload); err != nil {
			logging.Warn("snapshot_save_failed", map[string]any{"handle": handle, "error": err.Error()})
		}
	}
	return posts, nil
}
