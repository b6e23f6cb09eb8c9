package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	QuotationsParsed prometheus.Counter
	LegsDecoded      *prometheus.CounterVec
	DecoderFallbacks prometheus.Counter
	EmailsImported   prometheus.Counter
	ProcessingTime   prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg.
// Pass prometheus.DefaultRegisterer to expose them through promhttp.Handler.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		QuotationsParsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotations_parsed_total",
			Help:      "The total number of quotations extracted from PNR text",
		}),
		LegsDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legs_decoded_total",
			Help:      "The total number of flight legs decoded, by decoder source",
		}, []string{"source"}),
		DecoderFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decoder_fallbacks_total",
			Help:      "The number of times the external decoder was skipped in favour of the internal one",
		}),
		EmailsImported: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_imported_total",
			Help:      "The total number of quotation emails imported",
		}),
		ProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_processing_time_seconds",
			Help:      "Time taken to parse, decode and price one input",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
