package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"birdscope/internal/analyze"
	"birdscope/internal/logging"
	"birdscope/internal/metrics"
	"birdscope/internal/store/timelinedb"
	"birdscope/internal/xclient"
)

type userInfoHandler struct {
	loader   TimelineLoader
	analyzer *analyze.Analyzer
	db       *timelinedb.DB
}

func (h *userInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	metrics.ReportRuns.Inc()

	handle := r.URL.Query().Get("handle")
	if !xclient.ValidHandle(handle) {
		h.fail(w, xclient.ErrUnknownHandle)
		return
	}

	posts, err := h.loader.Timeline(r.Context(), handle)
	if err != nil {
		h.fail(w, err)
		return
	}
	report, err := h.analyzer.Report(posts)
	if err != nil {
		h.fail(w, err)
		return
	}

	metrics.ObserveReportDuration(start)
	if h.db != nil {
		if err := h.db.RecordReport(r.Context(), time.Now(), handle, len(posts), time.Since(start)); err != nil {
			logging.Warn("report_event_failed", map[string]any{"error": err.Error()})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logging.Error("encode_report_failed", map[string]any{"error": err.Error()})
	}
}

// fail writes user-facing messages verbatim and hides everything else
// behind a generic message, logging the detail.
func (h *userInfoHandler) fail(w http.ResponseWriter, err error) {
	metrics.ReportErrors.Inc()
	var ue *xclient.UserError
	msg := "Something went wrong on our end."
	switch {
	case errors.As(err, &ue):
		msg = ue.Message
	case errors.Is(err, analyze.ErrNoPosts):
		msg = "This user hasn't posted any tweets, so we can't analyze them."
	default:
		logging.Error("report_failed", map[string]any{"error": err.Error()})
	}
	http.Error(w, msg, http.StatusInternalServerError)
}

// spaHandler serves static files from dir and falls back to index.html for
// history-mode routes, leaving /api paths to the router.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
