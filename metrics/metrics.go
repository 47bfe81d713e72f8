package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"autoPallet/models"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// Searches counts search runs by outcome
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pallet_searches_total", Help: "Pallet searches by status."},
		[]string{"status"},
	)
	// Attempts counts (pallet orientation, layer height) attempts
	Attempts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pallet_attempts_total", Help: "Packing attempts evaluated."},
	)
	// PlacedBoxes counts boxes placed in winning results
	PlacedBoxes = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pallet_placed_boxes_total", Help: "Boxes placed in best results."},
	)
	Utilization = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "pallet_utilization_ratio", Help: "Volumetric utilization of best results.", Buckets: prometheus.LinearBuckets(0, 0.1, 11)},
	)
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "pallet_search_duration_seconds", Help: "Search duration in seconds.", Buckets: prometheus.DefBuckets},
	)
)

var regOnce sync.Once

// RegisterDefault registers collectors to Registry once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(Searches)
		Registry.MustRegister(Attempts)
		Registry.MustRegister(PlacedBoxes)
		Registry.MustRegister(Utilization)
		Registry.MustRegister(SearchDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveSearch records one finished search.
func ObserveSearch(sol models.Solution, took time.Duration, err error) {
	SearchDuration.Observe(took.Seconds())
	if err != nil {
		Searches.WithLabelValues("error").Inc()
		return
	}
	Searches.WithLabelValues("ok").Inc()
	Attempts.Add(float64(len(sol.Candidates)))
	PlacedBoxes.Add(float64(len(sol.Result.Placements)))
	Utilization.Observe(sol.Result.Utilization)
}
