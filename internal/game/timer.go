package game

import "time"

// TickInterval is the sampling cadence the platform should drive the timer
// at. 100ms keeps the ceiling-second countdown accurate.
const TickInterval = 100 * time.Millisecond

// Driver translates wall-clock samples into at most one timeout per level
// run. It owns no game rules: each Tick derives remaining time from the
// session's anchor and fires HandleTimeout exactly once when it reaches
// zero. The owning event loop delivers ticks serially and simply stops
// ticking while the session is inactive, which is the cancellation path.
type Driver struct {
	session *Session
	fired   bool
}

// NewDriver creates a driver bound to one session.
func NewDriver(s *Session) *Driver {
	return &Driver{session: s}
}

// Tick samples the clock at now and returns the ceiling-second display
// value, or zero when nothing is running. The fired latch re-arms whenever
// the driver observes an inactive session or a fresh (non-expired) run, so a
// stale tick can never fire against a superseded level.
func (d *Driver) Tick(now time.Time) int {
	if !d.session.Active() {
		d.fired = false
		return 0
	}

	rem := d.session.Remaining(now)
	if rem > 0 {
		d.fired = false
		return DisplaySeconds(rem)
	}

	if !d.fired {
		d.fired = true
		d.session.HandleTimeout()
	}
	return 0
}
