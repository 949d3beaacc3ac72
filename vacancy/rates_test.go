package vacancy

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRates(t *testing.T) {
	rate, err := DefaultRates.Rate("RUR", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	rate, err = DefaultRates.Rate("KZT", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.13, rate)
}

func TestStaticRates_UnknownCurrency(t *testing.T) {
	_, err := DefaultRates.Rate("BTC", time.Now())
	require.Error(t, err)
	assert.True(t, IsUnknownCurrency(err))

	var unknownErr *UnknownCurrencyError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "BTC", unknownErr.Currency)
}

func TestIsUnknownCurrency_OtherError(t *testing.T) {
	assert.False(t, IsUnknownCurrency(errors.New("boom")))
	assert.False(t, IsUnknownCurrency(nil))
}
