package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Failure kinds recorded by GenerationFailures
const (
	FailureUnknownCuisine = "unknown_cuisine"
	FailureInvalidFacet   = "invalid_facet"
	FailureInsufficient   = "insufficient_ingredients"
	FailureStorage        = "storage"
)

var (
	// Recipe generation metrics
	RecipesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefmaster_recipes_generated_total",
			Help: "Total number of recipes generated",
		},
		[]string{"cuisine", "difficulty"},
	)

	GenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefmaster_generation_failures_total",
			Help: "Total number of failed generation requests",
		},
		[]string{"kind"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chefmaster_generation_duration_seconds",
			Help:    "Duration of recipe generation including persistence",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
		},
	)

	// Draft cache metrics
	DraftCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chefmaster_draft_cache_hits_total",
			Help: "Total number of draft cache hits",
		},
	)
	DraftCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chefmaster_draft_cache_misses_total",
			Help: "Total number of draft cache misses",
		},
	)

	// Image resolution metrics
	ImagePlaceholders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chefmaster_image_placeholders_total",
			Help: "Total number of image lookups that fell back to the placeholder",
		},
	)

	// Rate limiting metrics
	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chefmaster_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefmaster_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chefmaster_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chefmaster_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
)

// Middleware records request rate, errors and duration for every route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		// Route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
