package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "naplanprep"

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	SyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Catalog sync runs by final status",
		},
		[]string{"status"},
	)

	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of catalog sync runs",
			Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120},
		},
	)

	SyncQuizzes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sync_quizzes",
			Help:      "Quiz counts of the last successful sync",
		},
		[]string{"kind"},
	)

	BundlesDeactivated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_bundles_deactivated_total",
			Help:      "Bundles deactivated because a sync no longer produced them",
		},
	)

	PricingFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_fallbacks_total",
			Help:      "Bundles priced from the Year 3 row because their year had no pricing",
		},
	)

	FeedbackEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_evaluations_total",
			Help:      "Writing feedback requests by outcome",
		},
		[]string{"outcome"},
	)

	SubjectFeedbackEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subject_feedback_evaluations_total",
			Help:      "Subject quiz coaching requests by subject and outcome",
		},
		[]string{"subject", "outcome"},
	)
)

var registerOnce sync.Once

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			SyncRuns,
			SyncDuration,
			SyncQuizzes,
			BundlesDeactivated,
			PricingFallbacks,
			FeedbackEvaluations,
			SubjectFeedbackEvaluations,
		)
	})
}

// ObserveSync records one finished sync run.
func ObserveSync(status string, elapsed time.Duration, fetched, parsed, unparseable, trial, deactivated, fallbacks int) {
	SyncRuns.WithLabelValues(status).Inc()
	SyncDuration.Observe(elapsed.Seconds())
	if status != "succeeded" {
		return
	}
	SyncQuizzes.WithLabelValues("fetched").Set(float64(fetched))
	SyncQuizzes.WithLabelValues("parsed").Set(float64(parsed))
	SyncQuizzes.WithLabelValues("unparseable").Set(float64(unparseable))
	SyncQuizzes.WithLabelValues("trial").Set(float64(trial))
	BundlesDeactivated.Add(float64(deactivated))
	PricingFallbacks.Add(float64(fallbacks))
}

// Middleware counts requests per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < 400 {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path

		RequestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
