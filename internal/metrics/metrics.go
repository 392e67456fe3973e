package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"faqbot/internal/db"
)

var (
	resolutionDesc = prometheus.NewDesc(
		"faqbot_resolutions_total",
		"Total message resolution count by outcome",
		[]string{"outcome"},
		nil,
	)
)

// ResolutionCollector is a custom Prometheus collector that reads resolution
// counters from the database on each scrape.
type ResolutionCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *ResolutionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- resolutionDesc
}

// Collect queries the database for all resolution counters and emits them.
func (c *ResolutionCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.db.GetAllResolutionStats(context.Background())
	if err != nil {
		slog.Error("failed to collect resolution metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			resolutionDesc,
			prometheus.CounterValue,
			float64(s.Count),
			s.Outcome,
		)
	}
}

// Recorder provides async resolution-outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&ResolutionCollector{db: database})
	})
}

// RecordResolution asynchronously records a resolution outcome.
func RecordResolution(outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementResolution(context.Background(), outcome); err != nil {
			slog.Error("failed to record resolution", "outcome", outcome, "error", err)
		}
	}()
}
