package util

import (
	"context"
	"os"
	"os/signal"

	"github.com/airbloc/logger"
)

// ContextWithSignal returns a context that is canceled when one of the
// given signals is received.
func ContextWithSignal(parent context.Context, sig ...os.Signal) (context.Context, context.CancelFunc) {
	log := logger.New("vacstat.util")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, sig...)

	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case sig := <-sigChan:
			log.Verbose("{} received during execution.", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
