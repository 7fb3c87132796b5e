package riot

import (
	"context"
	"sync"
	"time"
)

type window struct {
	limit  int
	period time.Duration
	hits   []time.Time
}

// limiter is a client side sliding window limiter over any number of windows.
// Windows with a limit of zero or less are ignored.
type limiter struct {
	mtx     sync.Mutex
	windows []*window
}

func newLimiter(windows ...*window) *limiter {
	active := []*window{}
	for _, w := range windows {
		if w.limit > 0 {
			active = append(active, w)
		}
	}
	return &limiter{windows: active}
}

// Wait blocks until a request fits in every window and records it.
func (l *limiter) Wait(ctx context.Context) error {
	for {
		l.mtx.Lock()
		now := time.Now()

		wait := time.Duration(0)
		for _, w := range l.windows {
			cutoff := now.Add(-w.period)
			i := 0
			for i < len(w.hits) && !w.hits[i].After(cutoff) {
				i++
			}
			w.hits = w.hits[i:]

			if len(w.hits) >= w.limit {
				if d := w.hits[0].Add(w.period).Sub(now); d > wait {
					wait = d
				}
			}
		}

		if wait == 0 {
			for _, w := range l.windows {
				w.hits = append(w.hits, now)
			}
			l.mtx.Unlock()
			return nil
		}
		l.mtx.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}
