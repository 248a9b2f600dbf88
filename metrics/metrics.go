// Package metrics exports formatter activity as Prometheus metrics through a
// jdate.FormatHook.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goliatone/go-jdate"
)

const metadataStart = "metrics.start"

// Metrics holds the Prometheus collectors fed by Hook
type Metrics struct {
	Renders           *prometheus.CounterVec
	UnknownSpecifiers *prometheus.CounterVec
	RenderDuration    *prometheus.HistogramVec
	PatternLength     prometheus.Histogram
}

// New registers the collectors with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "jdate",
				Name:      "renders_total",
				Help:      "Total number of rendered patterns",
			},
			[]string{"vocabulary", "script"},
		),
		UnknownSpecifiers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "jdate",
				Name:      "unknown_specifiers_total",
				Help:      "Specifiers passed through literally because no table entry matched",
			},
			[]string{"vocabulary"},
		),
		RenderDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "jdate",
				Name:      "render_duration_seconds",
				Help:      "Render duration in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"vocabulary"},
		),
		PatternLength: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "jdate",
				Name:      "render_pattern_length",
				Help:      "Length in runes of rendered patterns",
				Buckets:   prometheus.LinearBuckets(4, 8, 8),
			},
		),
	}
}

// NewHook registers the collectors with reg and returns the hook feeding them.
func NewHook(reg prometheus.Registerer) jdate.FormatHook {
	return New(reg).Hook()
}

// Hook returns a FormatHook that records every render.
func (m *Metrics) Hook() jdate.FormatHook {
	return jdate.FormatHookFuncs{
		Before: func(ctx *jdate.FormatHookContext) {
			ctx.SetMetadata(metadataStart, time.Now())
		},
		After: func(ctx *jdate.FormatHookContext) {
			vocabulary := string(ctx.Vocabulary)

			m.Renders.WithLabelValues(vocabulary, ctx.Script.String()).Inc()
			m.PatternLength.Observe(float64(len([]rune(ctx.Pattern))))

			if unknown := ctx.UnknownSpecifiers(); len(unknown) > 0 {
				m.UnknownSpecifiers.WithLabelValues(vocabulary).Add(float64(len(unknown)))
			}

			if value, ok := ctx.MetadataValue(metadataStart); ok {
				if start, ok := value.(time.Time); ok {
					m.RenderDuration.WithLabelValues(vocabulary).Observe(time.Since(start).Seconds())
				}
			}
		},
	}
}
