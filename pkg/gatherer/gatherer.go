package gatherer

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	cloudtags "github.com/grafana/cloudtags"
	"github.com/grafana/cloudtags/pkg/provider"
)

// Gatherer runs listers and records how long each (service, region) pair took
// and how many resources it reported.
type Gatherer struct {
	duration  *prometheus.HistogramVec
	resources *prometheus.CounterVec
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Gatherer {
	return &Gatherer{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:                           prometheus.BuildFQName(cloudtags.MetricPrefix, "lister", "duration_seconds"),
				Help:                           "Duration of listing tags for one service and region in seconds with error status.",
				NativeHistogramBucketFactor:    1.1,
				NativeHistogramMaxBucketNumber: 100,
			},
			[]string{"service", "is_error"},
		),
		resources: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prometheus.BuildFQName(cloudtags.MetricPrefix, "lister", "resources_total"),
				Help: "Number of resources whose tags were printed.",
			},
			[]string{"service", "region"},
		),
		logger: logger,
	}
}

func (g *Gatherer) Collectors() []prometheus.Collector {
	return []prometheus.Collector{g.duration, g.resources}
}

// Observe runs l for region, writing its output to w.
func (g *Gatherer) Observe(ctx context.Context, l provider.Lister, region string, w io.Writer) error {
	start := time.Now()
	lc := &lineCounter{w: w}

	err := l.ListTags(ctx, region, lc)
	duration := time.Since(start).Seconds()

	g.duration.WithLabelValues(l.Name(), strconv.FormatBool(err != nil)).Observe(duration)
	g.resources.WithLabelValues(l.Name(), region).Add(float64(lc.lines))

	g.logger.LogAttrs(ctx, slog.LevelDebug, "lister finished",
		slog.String("service", l.Name()),
		slog.String("region", region),
		slog.Int("resources", lc.lines),
		slog.Float64("duration_seconds", duration),
		slog.Bool("is_error", err != nil),
	)
	return err
}

// WriteTextfile writes every metric in r in the Prometheus text format, for
// pickup by the node_exporter textfile collector.
func WriteTextfile(path string, r prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, r)
}

type lineCounter struct {
	w     io.Writer
	lines int
}

func (c *lineCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.lines += bytes.Count(p[:n], []byte{'\n'})
	return n, err
}
