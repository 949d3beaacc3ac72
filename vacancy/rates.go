package vacancy

import (
	"errors"
	"fmt"
	"time"
)

// RateProvider resolves a currency code to its reference-currency exchange
// rate effective at the given time. Implementations backed by a live source
// may fail for pairs they do not cover.
type RateProvider interface {
	Rate(currency string, at time.Time) (float64, error)
}

// UnknownCurrencyError is returned when a provider has no rate for the
// requested currency.
type UnknownCurrencyError struct {
	Currency string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("no exchange rate for currency %q", e.Currency)
}

// IsUnknownCurrency reports whether err is an UnknownCurrencyError.
func IsUnknownCurrency(err error) bool {
	var target *UnknownCurrencyError
	return errors.As(err, &target)
}

// StaticRates is a fixed offline rate table. The timestamp is ignored.
type StaticRates map[string]float64

// DefaultRates is the built-in reference table used when no live rate
// source is injected.
var DefaultRates = StaticRates{
	"AZN": 35.68,
	"BYR": 23.91,
	"EUR": 59.90,
	"GEL": 21.74,
	"KGS": 0.76,
	"KZT": 0.13,
	"RUR": 1,
	"UAH": 1.64,
	"USD": 60.66,
	"UZS": 0.0055,
}

func (r StaticRates) Rate(currency string, _ time.Time) (float64, error) {
	rate, ok := r[currency]
	if !ok {
		return 0, &UnknownCurrencyError{Currency: currency}
	}
	return rate, nil
}
