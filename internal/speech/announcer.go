// Package speech provides best-effort audible announcements of the
// forbidden color. Announcements are dispatched asynchronously and failures
// never reach game logic: they are logged and dropped.
package speech

import (
	"github.com/charmbracelet/log"
)

// LogAnnouncer writes announcements to the logger instead of the speaker.
// Used when audio is disabled and for headless SSH sessions.
type LogAnnouncer struct {
	logger *log.Logger
}

// NewLogAnnouncer creates an announcer that only logs.
func NewLogAnnouncer(logger *log.Logger) *LogAnnouncer {
	return &LogAnnouncer{logger: logger}
}

// Announce implements game.Announcer.
func (a *LogAnnouncer) Announce(text string) {
	if a.logger != nil {
		a.logger.Debug("announce", "color", text)
	}
}
