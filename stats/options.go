package stats

import (
	"runtime"

	"github.com/creasty/defaults"

	"github.com/hhstat/vacstat/vacancy"
)

type Options struct {
	// Rates converts salaries to the reference currency. Defaults to the
	// built-in static table.
	Rates vacancy.RateProvider `default:"-"`

	// RatePolicy decides the fate of records with an unknown currency.
	RatePolicy RatePolicy `default:"0"`

	// Concurrency is the number of chunk workers used by the pool
	// strategy. By default, it will be number of CPUs in the machine.
	Concurrency int `default:"-"`
}

func DefaultOptions() (o Options) {
	o.SetDefaults()
	return
}

// SetDefaults fills zero-valued fields with their defaults. Fields the
// caller set explicitly are left untouched.
func (o *Options) SetDefaults() {
	if err := defaults.Set(o); err != nil {
		panic(err)
	}
	if defaults.CanUpdate(o.Concurrency) {
		o.Concurrency = runtime.NumCPU()
	}
	if o.Rates == nil {
		o.Rates = vacancy.DefaultRates
	}
}

func loadOptions(optionalOpt []Options) Options {
	if len(optionalOpt) > 0 {
		opt := optionalOpt[0]
		opt.SetDefaults()
		return opt
	}
	return DefaultOptions()
}
