package game

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// Status enumerates the five session screens. Exactly one holds at a time.
type Status int

const (
	StatusHomepage Status = iota
	StatusWaiting
	StatusPlaying
	StatusLevelSummary
	StatusFailed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusHomepage:
		return "homepage"
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusLevelSummary:
		return "levelSummary"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SummaryKind distinguishes a cleared level from a retryable miss.
type SummaryKind int

const (
	SummaryWin SummaryKind = iota
	SummaryRetry
)

// Breakdown itemizes the score change shown on a summary screen.
type Breakdown struct {
	Base  int // 10 points per round on a clear, 0 otherwise
	Time  int // Whole remaining seconds x 10 on a clear
	Total int // Net score change (negative on a miss)
}

// LevelSummary is the outcome record carried into the summary screen.
type LevelSummary struct {
	Kind      SummaryKind
	Breakdown Breakdown
}

const (
	// StartLives is the life count at the start of a run.
	StartLives = 3

	pointsPerRound = 10
	missPenalty    = 10

	// defaultAnnounceDelay postpones the round-0 announcement so it lands
	// after the board is on screen.
	defaultAnnounceDelay = time.Second
)

// Announcer voices the forbidden color for a round. Implementations must be
// best-effort and asynchronous: failures are logged and swallowed, never
// returned to the session.
type Announcer interface {
	Announce(text string)
}

// NopAnnouncer discards announcements.
type NopAnnouncer struct{}

// Announce implements Announcer.
func (NopAnnouncer) Announce(string) {}

// Session owns all mutable game state and every transition. It is not safe
// for concurrent use: the owning event loop must deliver clicks and timer
// ticks serially (the TUI's Bubble Tea update loop does exactly that).
type Session struct {
	clock         Clock
	rng           Rand
	announcer     Announcer
	announceDelay time.Duration

	status        Status
	level         int
	score         int
	lives         int
	round         int
	seq           SequenceSpec
	board         []Color
	prevBoard     []Color
	roundStart    time.Time
	timeLimit     time.Duration
	transitioning bool
	active        bool
	unlocked      map[int]bool
	summary       *LevelSummary
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects a wall-clock source.
func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

// WithRand injects the random source used by the generators.
func WithRand(r Rand) Option { return func(s *Session) { s.rng = r } }

// WithAnnouncer injects the voice announcer.
func WithAnnouncer(a Announcer) Option { return func(s *Session) { s.announcer = a } }

// WithAnnounceDelay overrides the round-0 announcement delay.
// A non-positive delay makes the announcement synchronous (used in tests).
func WithAnnounceDelay(d time.Duration) Option { return func(s *Session) { s.announceDelay = d } }

// NewSession creates a session on the homepage with level 1 unlocked.
func NewSession(opts ...Option) *Session {
	s := &Session{
		clock:         SystemClock(),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		announcer:     NopAnnouncer{},
		announceDelay: defaultAnnounceDelay,
		status:        StatusHomepage,
		level:         MinLevel,
		lives:         StartLives,
		unlocked:      map[int]bool{MinLevel: true},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartGame begins a fresh run from the homepage: level 1, full lives, zero
// score. Unlocked levels are untouched. No-op outside the homepage.
func (s *Session) StartGame() {
	if s.status != StatusHomepage {
		return
	}
	s.level = MinLevel
	s.score = 0
	s.lives = StartLives
	s.status = StatusWaiting
}

// StartGameAtLevel jumps straight into an already-unlocked level from the
// homepage. Selecting a locked level is silently ignored.
func (s *Session) StartGameAtLevel(level int) {
	if s.status != StatusHomepage {
		return
	}
	level = ClampLevel(level)
	if !s.unlocked[level] {
		return
	}
	s.startLevel(level)
}

// StartLevel enters play from the waiting screen (or restarts from a
// summary). Any other state ignores the call.
func (s *Session) StartLevel(level int) {
	switch s.status {
	case StatusWaiting, StatusLevelSummary:
		s.startLevel(level)
	}
}

// startLevel is the shared entry action into the playing state: fresh
// sequence and board, round zero, timing anchored to now.
func (s *Session) startLevel(level int) {
	level = ClampLevel(level)
	s.level = level
	s.seq = GenerateSequence(level, s.rng)
	s.prevBoard = nil
	s.board = GenerateBoard(level, s.seq.Colors[0], nil, s.rng)
	s.round = 0
	s.roundStart = s.clock.Now()
	s.timeLimit = time.Duration(TimeLimitFor(level)) * time.Second
	s.transitioning = false
	s.summary = nil
	s.status = StatusPlaying
	s.active = true
	s.announceRound(s.announceDelay)
}

// announceRound dispatches the forbidden-color announcement for the current
// round, optionally delayed. The announcer itself is fire-and-forget.
func (s *Session) announceRound(delay time.Duration) {
	name := s.forbidden().String()
	if delay <= 0 {
		s.announcer.Announce(name)
		return
	}
	a := s.announcer
	time.AfterFunc(delay, func() { a.Announce(name) })
}

// forbidden is the color the player must avoid this round.
// Valid only while a sequence is loaded.
func (s *Session) forbidden() Color {
	return s.seq.Colors[s.round]
}

// HandleColorClick processes a button press. Clicks outside the playing
// state, or while the board is being regenerated, are deliberate no-ops.
// A click is correct iff it is NOT the current forbidden color.
func (s *Session) HandleColorClick(c Color) {
	if s.status != StatusPlaying || s.transitioning {
		return
	}

	if c == s.forbidden() {
		s.penalize()
		return
	}

	if s.round == RoundsPerLevel-1 {
		s.completeLevel()
		return
	}

	// The latch keeps a click that races the board swap from being
	// attributed to the wrong arrangement.
	s.transitioning = true
	s.prevBoard = s.board
	s.round++
	s.board = GenerateBoard(s.level, s.forbidden(), s.prevBoard, s.rng)
	s.transitioning = false
	s.announceRound(0)
}

// HandleTimeout applies the expiry penalty. Driven by the timer driver; the
// penalty branch is identical to a wrong click.
func (s *Session) HandleTimeout() {
	if s.status != StatusPlaying {
		return
	}
	s.penalize()
}

// completeLevel settles a cleared level: base points plus a time bonus of
// ten points per whole remaining second, then unlocks the next level.
func (s *Session) completeLevel() {
	remaining := s.Remaining(s.clock.Now())
	base := pointsPerRound * RoundsPerLevel
	bonus := int(remaining.Seconds()) * pointsPerRound
	total := base + bonus

	s.score += total
	if next := s.level + 1; next <= MaxLevel {
		s.unlocked[next] = true
	}
	s.summary = &LevelSummary{
		Kind:      SummaryWin,
		Breakdown: Breakdown{Base: base, Time: bonus, Total: total},
	}
	s.status = StatusLevelSummary
	s.active = false
}

// penalize applies the wrong-click/timeout penalty: ten points off (floored
// at zero) and one life. Hitting either floor ends the whole run; otherwise
// the level can be retried.
func (s *Session) penalize() {
	s.score -= missPenalty
	if s.score < 0 {
		s.score = 0
	}
	s.lives--

	s.summary = &LevelSummary{
		Kind:      SummaryRetry,
		Breakdown: Breakdown{Total: -missPenalty},
	}
	if s.score == 0 || s.lives == 0 {
		s.score = 0
		s.lives = StartLives
		s.level = MinLevel
		s.status = StatusFailed
	} else {
		s.status = StatusLevelSummary
	}
	s.active = false
}

// ContinueToNextLevel advances from a win summary into the next level.
func (s *Session) ContinueToNextLevel() {
	if s.status != StatusLevelSummary || s.summary == nil || s.summary.Kind != SummaryWin {
		return
	}
	s.startLevel(s.level + 1)
}

// RetryLevel restarts the current level from a retry summary.
func (s *Session) RetryLevel() {
	if s.status != StatusLevelSummary || s.summary == nil || s.summary.Kind != SummaryRetry {
		return
	}
	s.startLevel(s.level)
}

// ReturnToHomepage exits to the level-select screen from any state, clearing
// round and board state. Score, lives and level carry over unchanged;
// calling it twice in a row leaves the state identical.
func (s *Session) ReturnToHomepage() {
	s.status = StatusHomepage
	s.active = false
	s.transitioning = false
	s.round = 0
	s.seq = SequenceSpec{}
	s.board = nil
	s.prevBoard = nil
	s.summary = nil
}

// ResetGame returns to a fresh homepage run: level 1, zero score, full
// lives. Unlocked levels survive for the rest of the process.
func (s *Session) ResetGame() {
	s.ReturnToHomepage()
	s.level = MinLevel
	s.score = 0
	s.lives = StartLives
}

// Active reports whether a level run is in progress and the timer should
// sample. It flips false on every exit from the playing state.
func (s *Session) Active() bool { return s.active }

// Remaining returns the fractional time left at now, floored at zero.
func (s *Session) Remaining(now time.Time) time.Duration {
	rem := s.timeLimit - now.Sub(s.roundStart)
	if rem < 0 {
		rem = 0
	}
	return rem
}

// DisplaySeconds converts remaining time to the ceiling-second countdown
// shown to the player, so "0" only appears once time has truly run out.
func DisplaySeconds(rem time.Duration) int {
	return int(math.Ceil(rem.Seconds()))
}

// Snapshot is the read model the UI observes after every event.
type Snapshot struct {
	Status           Status
	Level            int
	Score            int
	Lives            int
	Round            int
	Board            []Color
	Forbidden        Color
	RemainingSeconds int
	Unlocked         []int
	Summary          *LevelSummary
}

// Snapshot captures the current state for rendering. Slices are copied so
// the UI can hold them across subsequent transitions.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status: s.status,
		Level:  s.level,
		Score:  s.score,
		Lives:  s.lives,
		Round:  s.round,
	}
	if s.status == StatusPlaying {
		snap.Board = append([]Color(nil), s.board...)
		snap.Forbidden = s.forbidden()
		snap.RemainingSeconds = DisplaySeconds(s.Remaining(s.clock.Now()))
	}
	if s.summary != nil {
		cp := *s.summary
		snap.Summary = &cp
	}
	snap.Unlocked = make([]int, 0, len(s.unlocked))
	for id := range s.unlocked {
		snap.Unlocked = append(snap.Unlocked, id)
	}
	sort.Ints(snap.Unlocked)
	return snap
}
