// Package metrics exposes Prometheus collectors for problem serving, answer
// checking and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/mathstudio/internal/problem"
)

const namespace = "mathstudio"

// Metrics holds the collectors on a private registry so tests and multiple
// servers in one process do not collide.
type Metrics struct {
	registry *prometheus.Registry

	ProblemsServed *prometheus.CounterVec
	AnswersChecked *prometheus.CounterVec
	HintsRevealed  *prometheus.CounterVec
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
}

// New creates and registers every collector, plus the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ProblemsServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "problems_served_total",
				Help:      "Problems served, by genre, tier and source.",
			},
			[]string{"genre", "tier", "source"},
		),
		AnswersChecked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "answers_checked_total",
				Help:      "Answers checked, by genre, tier and result.",
			},
			[]string{"genre", "tier", "result"},
		),
		HintsRevealed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "hints_revealed_total",
				Help:      "Hints revealed, by genre.",
			},
			[]string{"genre"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "endpoint"},
		),
	}

	m.registry.MustRegister(
		m.ProblemsServed,
		m.AnswersChecked,
		m.HintsRevealed,
		m.HTTPRequests,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ProblemServed counts one served problem.
func (m *Metrics) ProblemServed(p problem.Problem) {
	m.ProblemsServed.WithLabelValues(string(p.Genre), p.Tier.String(), string(p.Source)).Inc()
}

// AnswerChecked counts one checked answer.
func (m *Metrics) AnswerChecked(p problem.Problem, correct bool) {
	result := "wrong"
	if correct {
		result = "correct"
	}
	m.AnswersChecked.WithLabelValues(string(p.Genre), p.Tier.String(), result).Inc()
}

// HintRevealed counts one revealed hint.
func (m *Metrics) HintRevealed(p problem.Problem) {
	m.HintsRevealed.WithLabelValues(string(p.Genre)).Inc()
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
