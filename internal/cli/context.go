package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// commandContext returns a context cancelled by SIGINT/SIGTERM and bounded
// by the command timeout. The timeout is catastrophic failure protection
// (hung network, deadlock), not per-query timeout control.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, timeout)

	return ctx, func() {
		cancel()
		stop()
	}
}
