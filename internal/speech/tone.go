package speech

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	noteDuration = 180 * time.Millisecond
)

// colorNotes maps a spoken color name to a two-note motif, so each
// announcement is distinguishable by ear. This stands in for text-to-speech.
var colorNotes = map[string][2]float64{
	"blue":   {330, 440},
	"green":  {392, 523},
	"yellow": {494, 659},
	"red":    {262, 196},
}

// ToneAnnouncer plays a short motif for each announced color. All playback
// is fire-and-forget: initialization or device failures are logged once and
// subsequent announcements become silent no-ops.
type ToneAnnouncer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	failed      bool
}

// NewToneAnnouncer creates an announcer. The speaker is opened lazily on the
// first announcement.
func NewToneAnnouncer(logger *log.Logger) *ToneAnnouncer {
	return &ToneAnnouncer{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Announce implements game.Announcer. It returns immediately; playback
// happens on the speaker goroutine.
func (a *ToneAnnouncer) Announce(text string) {
	go a.play(text)
}

func (a *ToneAnnouncer) play(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failed {
		return
	}
	if !a.initialized {
		if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			a.failed = true
			if a.logger != nil {
				a.logger.Warn("audio unavailable, announcements muted", "error", err)
			}
			return
		}
		speaker.Play(a.mixer)
		a.initialized = true
	}

	notes, ok := colorNotes[text]
	if !ok {
		notes = [2]float64{220, 220}
	}

	motif := beep.Seq(
		newTone(notes[0], noteDuration),
		newTone(notes[1], noteDuration),
	)
	speaker.Lock()
	a.mixer.Add(motif)
	speaker.Unlock()
}

// Close silences the announcer. Safe to call more than once.
func (a *ToneAnnouncer) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	a.initialized = false
	a.failed = true
}

// tone is a fixed-length sine streamer with a linear fade-out to avoid
// clicks between the two notes.
type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, total: sampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * t.phase)

		// Fade the last 10% of the note.
		fadeStart := t.total - t.total/10
		if t.position >= fadeStart && t.total > fadeStart {
			val *= float64(t.total-t.position) / float64(t.total-fadeStart)
		}

		samples[i][0] = val * 0.4
		samples[i][1] = val * 0.4

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
