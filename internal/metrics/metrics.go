package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReportRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "birdscope_report_runs_total",
		Help: "Total report generations",
	})
	ReportErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "birdscope_report_errors_total",
		Help: "Total failed report generations",
	})
	ReportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "birdscope_report_duration_seconds",
		Help:    "Report generation duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	TimelineFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "birdscope_timeline_fetches_total",
		Help: "Timeline loads by source (api or cache)",
	}, []string{"source"})
	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "birdscope_cache_hits_total",
		Help: "Memoization cache hits by wrapped function",
	}, []string{"fn"})
	CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "birdscope_cache_misses_total",
		Help: "Memoization cache misses by wrapped function",
	}, []string{"fn"})
	APIRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "birdscope_api_retries_total",
		Help: "Total API retry attempts",
	}, []string{"endpoint"})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "birdscope_command_runs_total",
		Help: "CLI command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "birdscope_command_errors_total",
		Help: "CLI command failures",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(ReportRuns, ReportErrors, ReportDuration, TimelineFetches, CacheHits, CacheMisses, APIRetries, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveReportDuration records one report generation duration.
func ObserveReportDuration(start time.Time) {
	ReportDuration.Observe(time.Since(start).Seconds())
}

// IncCacheHit counts one memoization hit for the named function.
func IncCacheHit(fn string) { CacheHits.WithLabelValues(fn).Inc() }

// IncCacheMiss counts one memoization miss for the named function.
func IncCacheMiss(fn string) { CacheMisses.WithLabelValues(fn).Inc() }

// IncAPIRetry increments the retry counter for an endpoint.
func IncAPIRetry(endpoint string) { APIRetries.WithLabelValues(endpoint).Inc() }

// IncTimelineFetch records a timeline load from "api" or "cache".
func IncTimelineFetch(source string) { TimelineFetches.WithLabelValues(source).Inc() }

// IncCommandRun counts one CLI command invocation.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError counts one CLI command failure.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
