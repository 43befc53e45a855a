package game

import (
	"sync"
	"time"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptRand replays a fixed list of floats, cycling when exhausted.
// It lets tests force specific draws, collisions and fallback paths.
type scriptRand struct {
	vals []float64
	i    int
}

func (r *scriptRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// calls returns how many draws have been consumed.
func (r *scriptRand) calls() int { return r.i }

// recordAnnouncer captures announced texts. Safe for the delayed
// announcement goroutine.
type recordAnnouncer struct {
	mu     sync.Mutex
	spoken []string
}

func (a *recordAnnouncer) Announce(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.spoken = append(a.spoken, text)
}

func (a *recordAnnouncer) Spoken() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.spoken...)
}
