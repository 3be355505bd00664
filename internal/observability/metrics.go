package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// CommentsCreated counts comments created.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "persona_comments_created_total",
		Help: "Total number of comments created",
	})

	// LikeOperations counts like and unlike operations by action and outcome.
	LikeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persona_like_operations_total",
		Help: "Total number of like/unlike operations by action and outcome",
	}, []string{"action", "outcome"})

	// ProfilesCreated counts profiles created.
	ProfilesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "persona_profiles_created_total",
		Help: "Total number of profiles created",
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "persona_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
