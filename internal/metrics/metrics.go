package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"brewfinder/internal/models"
)

var (
	searchOutcomeDesc = prometheus.NewDesc(
		"brewfinder_searches_total",
		"Total brewery searches by query kind and outcome",
		[]string{"kind", "outcome"},
		nil,
	)

	directoryUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "brewfinder_directory_up",
		Help: "Whether the brewery directory answered the last availability probe",
	})
)

// OutcomeStore persists search outcome counts.
type OutcomeStore interface {
	IncrementSearchOutcome(ctx context.Context, kind, outcome string) error
	GetAllSearchOutcomes(ctx context.Context) ([]models.SearchOutcome, error)
}

// SearchCollector is a custom Prometheus collector that reads search
// outcome counts from the database on each scrape.
type SearchCollector struct {
	store OutcomeStore
}

// Describe sends the metric descriptor to the channel.
func (c *SearchCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- searchOutcomeDesc
}

// Collect queries the store for all search outcomes and emits them as counters.
func (c *SearchCollector) Collect(ch chan<- prometheus.Metric) {
	outcomes, err := c.store.GetAllSearchOutcomes(context.Background())
	if err != nil {
		slog.Error("failed to collect search outcome metrics", "error", err)
		return
	}
	for _, o := range outcomes {
		ch <- prometheus.MustNewConstMetric(
			searchOutcomeDesc,
			prometheus.CounterValue,
			float64(o.Count),
			o.Kind,
			o.Outcome,
		)
	}
}

// Recorder provides async search outcome recording.
type Recorder struct {
	store OutcomeStore
	wg    sync.WaitGroup
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup.
func Init(store OutcomeStore) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(&SearchCollector{store: store}, directoryUp)
	})
}

// RecordSearchOutcome asynchronously records a search outcome.
func RecordSearchOutcome(kind, outcome string) {
	if recorder == nil {
		return
	}
	recorder.wg.Add(1)
	go func() {
		defer recorder.wg.Done()
		if err := recorder.store.IncrementSearchOutcome(context.Background(), kind, outcome); err != nil {
			slog.Error("failed to record search outcome", "kind", kind, "outcome", outcome, "error", err)
		}
	}()
}

// Flush waits for pending outcome writes.
func Flush() {
	if recorder != nil {
		recorder.wg.Wait()
	}
}

// SetDirectoryUp reports the directory availability.
func SetDirectoryUp(up bool) {
	if up {
		directoryUp.Set(1)
		return
	}
	directoryUp.Set(0)
}
