// Package limiter bounds the rate of remote API calls.
//
// It enforces two independent limits: at most MaxConcurrent calls may be
// in flight at once, and after a call completes its slot is held idle for
// Interval before becoming reusable. The second limit bounds steady-state
// throughput even when individual calls return instantly; a concurrency cap
// alone would not.
//
// This is a politeness discipline towards the remote service, not a
// correctness lock: exceeding it risks remote throttling, not local data
// corruption. Callers block on slot acquisition; FIFO fairness is not
// guaranteed.
//
// # Usage
//
//	lim := limiter.New(limiter.Config{MaxConcurrent: 20, IntervalSeconds: 2})
//	err := lim.Do(ctx, func() error { return client.GetStickerSet(ctx, name) })
package limiter
