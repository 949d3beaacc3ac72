package vacstat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hhstat/vacstat/vacancy"
)

func TestOptions_SetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()

	assert.Equal(t, StrategyPool, o.Strategy)
	assert.Equal(t, "year_separated", o.PartitionDir)
	assert.Equal(t, "published_at", o.DateTimeColumn)
	assert.Greater(t, o.Concurrency, 0)
	assert.Equal(t, vacancy.DefaultRates, o.Rates)
	assert.Equal(t, time.Duration(0), o.Timeout)
	assert.False(t, o.SkipUnknownCurrency)
}

// A partially filled Options must keep the caller's fields and default the
// rest.
func TestOptions_SetDefaults_Partial(t *testing.T) {
	o := Options{
		Strategy:     StrategyFutures,
		PartitionDir: "/tmp/chunks",
	}
	o.SetDefaults()

	assert.Equal(t, StrategyFutures, o.Strategy)
	assert.Equal(t, "/tmp/chunks", o.PartitionDir)
	assert.Equal(t, "published_at", o.DateTimeColumn)
	assert.Greater(t, o.Concurrency, 0)
	assert.Equal(t, vacancy.DefaultRates, o.Rates)
}
