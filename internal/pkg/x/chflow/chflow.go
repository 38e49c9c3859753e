// Package chflow provides context-aware helpers for channel-driven loops.
package chflow

import (
	"context"
	"time"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Every runs fn immediately and then once per interval until ctx is done.
// Runs never overlap: a slow fn delays the next tick instead of stacking calls.
func Every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	if ctx.Err() != nil {
		return
	}

	fn(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, ok := Receive(ctx, ticker.C); !ok || ctx.Err() != nil {
			return
		}

		fn(ctx)
	}
}
