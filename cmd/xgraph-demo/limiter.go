package main

import "time"

// frameLimiter paces the redraw loop to a fixed frame rate
type frameLimiter struct {
	target time.Duration
	next   time.Time
}

func newFrameLimiter(fps int) *frameLimiter {
	f := &frameLimiter{}
	if fps > 0 {
		f.target = time.Second / time.Duration(fps)
	}
	return f
}

// Wait blocks until the next frame is due. Sleeps most of the way, then
// spins for the final stretch.
func (f *frameLimiter) Wait() {
	if f.target <= 0 {
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(f.target)
	} else {
		f.next = f.next.Add(f.target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch instead of trying to catch up
	if late := -time.Until(f.next); late > f.target {
		f.next = time.Now().Add(f.target)
	}
}
