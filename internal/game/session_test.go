package game

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func newTestSession(seed int64) (*Session, *fakeClock, *recordAnnouncer) {
	clock := newFakeClock()
	ann := &recordAnnouncer{}
	s := NewSession(
		WithClock(clock),
		WithRand(rand.New(rand.NewSource(seed))),
		WithAnnouncer(ann),
		WithAnnounceDelay(0), // synchronous announcements for tests
	)
	return s, clock, ann
}

// clickCorrect presses any board button that is not the forbidden color.
func clickCorrect(t *testing.T, s *Session) {
	t.Helper()
	snap := s.Snapshot()
	for _, c := range snap.Board {
		if c != snap.Forbidden {
			s.HandleColorClick(c)
			return
		}
	}
	t.Fatal("board has no safe button to press")
}

func TestStartGameFlow(t *testing.T) {
	s, _, _ := newTestSession(1)

	s.StartGame()
	snap := s.Snapshot()
	if snap.Status != StatusWaiting {
		t.Fatalf("status = %v, expected waiting", snap.Status)
	}
	if snap.Level != 1 || snap.Score != 0 || snap.Lives != StartLives {
		t.Errorf("fresh run = level %d score %d lives %d", snap.Level, snap.Score, snap.Lives)
	}

	s.StartLevel(1)
	snap = s.Snapshot()
	if snap.Status != StatusPlaying {
		t.Fatalf("status = %v, expected playing", snap.Status)
	}
	if snap.Round != 0 {
		t.Errorf("round = %d, expected 0", snap.Round)
	}
	if len(snap.Board) != 2 {
		t.Errorf("level 1 board size = %d, expected 2", len(snap.Board))
	}
	if snap.RemainingSeconds != 20 {
		t.Errorf("remaining = %d, expected the full 20s budget", snap.RemainingSeconds)
	}
}

func TestClickIgnoredOutsidePlaying(t *testing.T) {
	s, _, _ := newTestSession(1)

	before := s.Snapshot()
	s.HandleColorClick(Blue)
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Error("click on the homepage must be a silent no-op")
	}
}

func TestCorrectClickAdvancesRound(t *testing.T) {
	s, _, ann := newTestSession(2)
	s.StartGame()
	s.StartLevel(1)

	clickCorrect(t, s)

	snap := s.Snapshot()
	if snap.Round != 1 {
		t.Errorf("round = %d, expected 1", snap.Round)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("status = %v, expected playing", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, intermediate clicks must not score", snap.Score)
	}

	spoken := ann.Spoken()
	if len(spoken) != 2 {
		t.Fatalf("announcements = %v, expected round 0 and round 1", spoken)
	}
	if spoken[1] != snap.Forbidden.String() {
		t.Errorf("announced %q, expected %q", spoken[1], snap.Forbidden)
	}
}

func TestLevelCompletionScoring(t *testing.T) {
	s, clock, _ := newTestSession(3)
	s.StartGame()
	s.StartLevel(1)

	for i := 0; i < RoundsPerLevel-1; i++ {
		clickCorrect(t, s)
	}
	// 12.3s elapsed of the 20s budget: bonus = floor(7.7) * 10 = 70.
	clock.Advance(12300 * time.Millisecond)
	clickCorrect(t, s)

	snap := s.Snapshot()
	if snap.Status != StatusLevelSummary {
		t.Fatalf("status = %v, expected levelSummary", snap.Status)
	}
	if snap.Summary == nil || snap.Summary.Kind != SummaryWin {
		t.Fatal("expected a win summary")
	}
	want := Breakdown{Base: 100, Time: 70, Total: 170}
	if snap.Summary.Breakdown != want {
		t.Errorf("breakdown = %+v, expected %+v", snap.Summary.Breakdown, want)
	}
	if snap.Score != 170 {
		t.Errorf("score = %d, expected 170", snap.Score)
	}
	if !reflect.DeepEqual(snap.Unlocked, []int{1, 2}) {
		t.Errorf("unlocked = %v, expected level 2 to open", snap.Unlocked)
	}
}

func TestOvertimeCompletionScoresBaseOnly(t *testing.T) {
	// Finishing after the budget (the timeout raced and lost) still clears
	// the level, with a zero time bonus.
	s, clock, _ := newTestSession(4)
	s.StartGame()
	s.StartLevel(1)

	for i := 0; i < RoundsPerLevel-1; i++ {
		clickCorrect(t, s)
	}
	clock.Advance(25 * time.Second)
	clickCorrect(t, s)

	snap := s.Snapshot()
	if snap.Summary == nil || snap.Summary.Breakdown.Time != 0 {
		t.Fatalf("summary = %+v, expected zero time bonus", snap.Summary)
	}
	if snap.Score != 100 {
		t.Errorf("score = %d, expected base-only 100", snap.Score)
	}
}

func TestWrongClickRetryOutcome(t *testing.T) {
	s, _, _ := newTestSession(5)
	s.StartGame()
	s.StartLevel(2)
	s.score = 50
	s.lives = 2

	s.HandleColorClick(s.forbidden())

	snap := s.Snapshot()
	if snap.Status != StatusLevelSummary {
		t.Fatalf("status = %v, expected levelSummary", snap.Status)
	}
	if snap.Summary == nil || snap.Summary.Kind != SummaryRetry {
		t.Fatal("expected a retry summary")
	}
	if snap.Score != 40 || snap.Lives != 1 {
		t.Errorf("score %d lives %d, expected 40 and 1", snap.Score, snap.Lives)
	}
	if snap.Level != 2 {
		t.Errorf("level = %d, a retryable miss must not reset the level", snap.Level)
	}
	want := Breakdown{Total: -10}
	if snap.Summary.Breakdown != want {
		t.Errorf("breakdown = %+v, expected %+v", snap.Summary.Breakdown, want)
	}
}

func TestScoreFloorTriggersGameOver(t *testing.T) {
	s, _, _ := newTestSession(6)
	s.StartGame()
	s.StartLevel(1)
	s.score = 5

	s.HandleColorClick(s.forbidden())

	snap := s.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("status = %v, expected failed once the score floor is hit", snap.Status)
	}
	if snap.Score != 0 || snap.Lives != StartLives || snap.Level != 1 {
		t.Errorf("post game-over state: score %d lives %d level %d, expected 0/3/1",
			snap.Score, snap.Lives, snap.Level)
	}
	if snap.Summary == nil || snap.Summary.Breakdown.Total != -10 {
		t.Errorf("summary = %+v, expected a -10 breakdown", snap.Summary)
	}
}

func TestLivesFloorTriggersGameOver(t *testing.T) {
	s, _, _ := newTestSession(7)
	s.StartGame()
	s.StartLevel(3)
	s.score = 500
	s.lives = 1

	s.HandleColorClick(s.forbidden())

	snap := s.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("status = %v, expected failed on the last life regardless of score", snap.Status)
	}
	if snap.Score != 0 || snap.Lives != StartLives || snap.Level != 1 {
		t.Errorf("post game-over state: score %d lives %d level %d, expected 0/3/1",
			snap.Score, snap.Lives, snap.Level)
	}
}

func TestTimeoutPenaltyBranches(t *testing.T) {
	// Timeout with spare lives and score ends in a retry summary.
	s, _, _ := newTestSession(8)
	s.StartGame()
	s.StartLevel(2)
	s.score = 50
	s.lives = 2

	s.HandleTimeout()

	snap := s.Snapshot()
	if snap.Status != StatusLevelSummary || snap.Score != 40 || snap.Lives != 1 {
		t.Errorf("timeout retry: status %v score %d lives %d, expected summary/40/1",
			snap.Status, snap.Score, snap.Lives)
	}

	// Same expiry on the last life is a full game over.
	s2, _, _ := newTestSession(8)
	s2.StartGame()
	s2.StartLevel(2)
	s2.score = 50
	s2.lives = 1

	s2.HandleTimeout()

	snap = s2.Snapshot()
	if snap.Status != StatusFailed || snap.Score != 0 || snap.Lives != StartLives || snap.Level != 1 {
		t.Errorf("timeout game-over: status %v score %d lives %d level %d, expected failed/0/3/1",
			snap.Status, snap.Score, snap.Lives, snap.Level)
	}
}

func TestStartGameAtLevelRespectsUnlocks(t *testing.T) {
	s, _, _ := newTestSession(9)
	s.unlocked[2] = true

	before := s.Snapshot()
	s.StartGameAtLevel(3)
	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Error("selecting a locked level must be a silent no-op")
	}

	s.StartGameAtLevel(2)
	snap := s.Snapshot()
	if snap.Status != StatusPlaying || snap.Level != 2 {
		t.Errorf("status %v level %d, expected to play level 2 directly", snap.Status, snap.Level)
	}
}

func TestSummaryGating(t *testing.T) {
	// Win summary: retry is a no-op, continue advances.
	s, _, _ := newTestSession(10)
	s.StartGame()
	s.StartLevel(1)
	for i := 0; i < RoundsPerLevel; i++ {
		clickCorrect(t, s)
	}
	if s.Snapshot().Summary.Kind != SummaryWin {
		t.Fatal("expected a win summary")
	}

	s.RetryLevel()
	if s.Snapshot().Status != StatusLevelSummary {
		t.Error("RetryLevel must not fire from a win summary")
	}
	s.ContinueToNextLevel()
	snap := s.Snapshot()
	if snap.Status != StatusPlaying || snap.Level != 2 {
		t.Errorf("status %v level %d, expected to continue into level 2", snap.Status, snap.Level)
	}

	// Retry summary: continue is a no-op, retry restarts the same level.
	s.score = 50
	s.HandleColorClick(s.forbidden())
	if s.Snapshot().Summary.Kind != SummaryRetry {
		t.Fatal("expected a retry summary")
	}

	s.ContinueToNextLevel()
	if s.Snapshot().Status != StatusLevelSummary {
		t.Error("ContinueToNextLevel must not fire from a retry summary")
	}
	s.RetryLevel()
	snap = s.Snapshot()
	if snap.Status != StatusPlaying || snap.Level != 2 {
		t.Errorf("status %v level %d, expected to retry level 2", snap.Status, snap.Level)
	}
}

func TestReturnToHomepageIdempotent(t *testing.T) {
	s, _, _ := newTestSession(11)
	s.StartGame()
	s.StartLevel(1)

	s.ReturnToHomepage()
	first := s.Snapshot()
	s.ReturnToHomepage()
	second := s.Snapshot()

	if first.Status != StatusHomepage {
		t.Fatalf("status = %v, expected homepage", first.Status)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second call changed state: %+v vs %+v", first, second)
	}
}

func TestReturnToHomepagePreservesProgress(t *testing.T) {
	s, _, _ := newTestSession(12)
	s.StartGame()
	s.StartLevel(1)
	for i := 0; i < RoundsPerLevel; i++ {
		clickCorrect(t, s)
	}

	s.ReturnToHomepage()
	snap := s.Snapshot()
	if snap.Score != 300 { // 100 base + 20 untouched seconds x 10
		t.Errorf("score = %d, the exit must keep the earned 300", snap.Score)
	}
	if !reflect.DeepEqual(snap.Unlocked, []int{1, 2}) {
		t.Errorf("unlocked = %v, unlocks must survive the exit", snap.Unlocked)
	}
	if snap.Board != nil {
		t.Error("board must be cleared on the homepage")
	}
}

func TestUnlocksSurviveGameOver(t *testing.T) {
	s, _, _ := newTestSession(13)
	s.unlocked[2] = true
	s.unlocked[3] = true
	s.StartGame()
	s.StartLevel(3)
	s.lives = 1
	s.score = 100

	s.HandleColorClick(s.forbidden())
	if s.Snapshot().Status != StatusFailed {
		t.Fatal("expected game over")
	}

	s.ReturnToHomepage()
	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Unlocked, []int{1, 2, 3}) {
		t.Errorf("unlocked = %v, the set must never shrink", snap.Unlocked)
	}
}

func TestResetGame(t *testing.T) {
	s, _, _ := newTestSession(14)
	s.unlocked[2] = true
	s.StartGame()
	s.StartLevel(2)
	s.score = 300

	s.ResetGame()
	snap := s.Snapshot()
	if snap.Status != StatusHomepage || snap.Level != 1 || snap.Score != 0 || snap.Lives != StartLives {
		t.Errorf("reset state: %+v, expected a fresh homepage run", snap)
	}
	if !reflect.DeepEqual(snap.Unlocked, []int{1, 2}) {
		t.Errorf("unlocked = %v, reset must keep unlocks", snap.Unlocked)
	}
}

func TestRoundZeroAnnouncement(t *testing.T) {
	s, _, ann := newTestSession(15)
	s.StartGame()
	s.StartLevel(1)

	spoken := ann.Spoken()
	if len(spoken) != 1 {
		t.Fatalf("announcements = %v, expected exactly the round-0 color", spoken)
	}
	if spoken[0] != s.seq.Colors[0].String() {
		t.Errorf("announced %q, expected %q", spoken[0], s.seq.Colors[0])
	}
}

func TestDelayedAnnouncementFires(t *testing.T) {
	clock := newFakeClock()
	ann := &recordAnnouncer{}
	s := NewSession(
		WithClock(clock),
		WithRand(rand.New(rand.NewSource(16))),
		WithAnnouncer(ann),
		WithAnnounceDelay(5*time.Millisecond),
	)
	s.StartGame()
	s.StartLevel(1)

	deadline := time.Now().Add(2 * time.Second)
	for len(ann.Spoken()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("delayed round-0 announcement never fired")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestDisplaySecondsCeiling(t *testing.T) {
	tests := []struct {
		rem      time.Duration
		expected int
	}{
		{0, 0},
		{50 * time.Millisecond, 1},
		{time.Second, 1},
		{1100 * time.Millisecond, 2},
		{7700 * time.Millisecond, 8},
		{20 * time.Second, 20},
	}

	for _, tc := range tests {
		if got := DisplaySeconds(tc.rem); got != tc.expected {
			t.Errorf("DisplaySeconds(%v) = %d, expected %d", tc.rem, got, tc.expected)
		}
	}
}
