package routes

import "time"

// Burn spins on the monotonic clock until d has elapsed and returns the
// number of loop iterations. It never sleeps or yields, so it holds one core
// at 100% for the whole duration.
func Burn(d time.Duration) uint64 {
	start := time.Now()
	var n uint64
	for time.Since(start) < d {
		n++
	}
	return n
}
