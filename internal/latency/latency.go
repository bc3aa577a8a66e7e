// Package latency simula la demora de un backend real.
package latency

import (
	"context"
	"time"
)

// Wait bloquea durante d o hasta que se cancele el contexto
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
