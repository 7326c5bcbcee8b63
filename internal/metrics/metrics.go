package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the engine counters exposed on /metrics.
type Collector struct {
	classifications *prometheus.CounterVec
	types           *prometheus.CounterVec
	signalFailures  *prometheus.CounterVec
	memoHits        prometheus.Counter
	breakerOpens    *prometheus.CounterVec
	indexSize       prometheus.GaugeFunc
}

// New builds the collector. indexSize is sampled on every scrape.
func New(indexSize func() float64) *Collector {
	c := &Collector{}

	c.classifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txc",
		Name:      "classifications_total",
		Help:      "Category decisions by source",
	}, []string{"source"})

	c.types = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txc",
		Name:      "types_total",
		Help:      "Type decisions by source",
	}, []string{"source"})

	c.signalFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txc",
		Name:      "signal_failures_total",
		Help:      "External signal errors by signal",
	}, []string{"signal"})

	c.memoHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "txc",
		Name:      "memo_hits_total",
		Help:      "Classification decisions served from the memo cache",
	})

	c.breakerOpens = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txc",
		Name:      "breaker_opens_total",
		Help:      "Circuit breaker open transitions by breaker name",
	}, []string{"name"})

	c.indexSize = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "txc",
		Name:      "known_merchants",
		Help:      "Known-merchant index size",
	}, indexSize)

	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		c.classifications,
		c.types,
		c.signalFailures,
		c.memoHits,
		c.breakerOpens,
		c.indexSize,
	)
}

func (c *Collector) Classification(source string) {
	c.classifications.WithLabelValues(source).Inc()
}

func (c *Collector) Type(source string) {
	c.types.WithLabelValues(source).Inc()
}

func (c *Collector) SignalFailure(signal string) {
	c.signalFailures.WithLabelValues(signal).Inc()
}

func (c *Collector) MemoHit() {
	c.memoHits.Inc()
}

func (c *Collector) BreakerOpen(name string) {
	c.breakerOpens.WithLabelValues(name).Inc()
}
