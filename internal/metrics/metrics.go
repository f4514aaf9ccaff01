// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, comment fetching,
// model calls, and live sessions.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "youtube_comment_analysis"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Fetch metrics - track comment retrieval from the platform
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "total",
			Help:      "Total number of comment fetches by result",
		},
		[]string{"result"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "duration_seconds",
			Help:      "Comment fetch duration in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"result"},
	)

	CommentsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "comments_total",
			Help:      "Total number of comments fetched by kind",
		},
		[]string{"kind"},
	)

	// Model metrics - track calls to the LLM endpoint
	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Total number of model calls by kind and result",
		},
		[]string{"kind", "result"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Model call duration in seconds",
			Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)

	ClassifyBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "classify_batches_total",
			Help:      "Total number of classification batches by result",
		},
		[]string{"result"},
	)

	// Session metrics
	SessionsLive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "live",
			Help:      "Number of sessions currently held in memory",
		},
	)
)

// ObserveFetch records metrics for one fetch action.
func ObserveFetch(result string, durationSeconds float64, commentCount int) {
	FetchesTotal.WithLabelValues(result).Inc()
	FetchDuration.WithLabelValues(result).Observe(durationSeconds)
	if commentCount > 0 {
		CommentsFetched.WithLabelValues("top_level").Add(float64(commentCount))
	}
}

// ObserveLLMRequest records metrics for one model call.
func ObserveLLMRequest(kind, result string, durationSeconds float64) {
	LLMRequestsTotal.WithLabelValues(kind, result).Inc()
	LLMRequestDuration.WithLabelValues(kind).Observe(durationSeconds)
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time since the timer was created.
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// SessionCounter reports how many sessions are live.
// This allows for easier testing by mocking the session store.
type SessionCounter interface {
	Len() int
}

// SessionStatsCollector samples the session store periodically and
// exports the live-session gauge.
type SessionStatsCollector struct {
	counter  SessionCounter
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSessionStatsCollector creates a collector over the given counter.
func NewSessionStatsCollector(counter SessionCounter) *SessionStatsCollector {
	return &SessionStatsCollector{
		counter:  counter,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting session stats every interval
func (c *SessionStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *SessionStatsCollector) collect() {
	SessionsLive.Set(float64(c.counter.Len()))
}

// Stop stops the session stats collector
func (c *SessionStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}
