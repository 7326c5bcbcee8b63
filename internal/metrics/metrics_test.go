package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorCounters(t *testing.T) {
	c := New(func() float64 { return 42 })
	reg := prometheus.NewRegistry()
	c.Register(reg)

	c.Classification("PLAID")
	c.Classification("PLAID")
	c.Type("ACCOUNT_TYPE")
	c.SignalFailure("semantic")
	c.MemoHit()
	c.BreakerOpen("ml")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.classifications.WithLabelValues("PLAID")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.types.WithLabelValues("ACCOUNT_TYPE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.signalFailures.WithLabelValues("semantic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.memoHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.breakerOpens.WithLabelValues("ml")))
	assert.Equal(t, 42.0, testutil.ToFloat64(c.indexSize))
}
