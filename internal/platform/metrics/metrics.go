package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "critter_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "critter_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "critter_upstream_requests_total",
			Help: "Upstream API calls by outcome",
		},
		[]string{"upstream", "outcome"}, // outcome: ok, miss, error, rejected
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "critter_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	SpawnsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "critter_spawns_created_total",
			Help: "Spawns created by kind",
		},
		[]string{"kind"},
	)

	SpawnAnimals = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "critter_spawn_animals",
			Help:    "Number of enriched animals per created spawn",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 10},
		},
	)

	EnrichmentDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "critter_enrichment_dropped_total",
			Help: "Animals dropped from spawns for lack of an encyclopedia entry",
		},
	)

	EnrichmentPlaceholders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "critter_enrichment_placeholders_total",
			Help: "Collection animals returned with the no-data placeholder",
		},
	)
)

func RecordAPIRequest(method, route string, status int, d time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func RecordUpstream(upstream, outcome string) {
	UpstreamRequests.WithLabelValues(upstream, outcome).Inc()
}

func RecordSpawn(kind string, animals int) {
	SpawnsCreated.WithLabelValues(kind).Inc()
	SpawnAnimals.Observe(float64(animals))
}
