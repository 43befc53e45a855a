package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ntimofeev/colortrap/internal/config"
	"github.com/ntimofeev/colortrap/internal/game"
	"github.com/ntimofeev/colortrap/internal/storage"
)

// Model is the Bubble Tea model driving one game session. All rule
// decisions happen inside game.Session; the model only maps keys to
// session calls, pumps the timer driver and renders snapshots.
type Model struct {
	session  *game.Session
	driver   *game.Driver
	store    *storage.Store
	keys     *KeyMapper
	interval time.Duration

	width  int
	height int

	cursor     int // homepage menu position: 0 = new game, 1..6 = levels
	ticking    bool
	quitting   bool
	lastStatus game.Status
	lastLevel  int // level before the most recent transition, for run records
}

// NewModel creates a model bound to one session.
func NewModel(session *game.Session, store *storage.Store, cfg config.Config, width, height int) Model {
	interval := time.Duration(cfg.Game.TickIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = game.TickInterval
	}

	return Model{
		session:    session,
		driver:     game.NewDriver(session),
		store:      store,
		keys:       NewKeyMapper(),
		interval:   interval,
		width:      width,
		height:     height,
		lastStatus: game.StatusHomepage,
	}
}

// Init implements tea.Model. Nothing ticks until a level starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick samples the timer driver and keeps the tick chain alive only
// while the session is active.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.driver.Tick(time.Now())
	cmd := m.afterEvent()
	if m.session.Active() {
		return m, tickCmd(m.interval)
	}
	m.ticking = false
	return m, cmd
}

// handleKey routes a key press according to the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	snap := m.session.Snapshot()
	switch snap.Status {
	case game.StatusHomepage:
		m.handleHomepageKey(action)
	case game.StatusWaiting:
		if action == ActionConfirm {
			m.session.StartLevel(snap.Level)
		}
		if action == ActionBack {
			m.session.ReturnToHomepage()
		}
	case game.StatusPlaying:
		if idx, ok := ButtonIndex(msg.String()); ok && idx < len(snap.Board) {
			m.session.HandleColorClick(snap.Board[idx])
		}
		if action == ActionBack {
			m.session.ReturnToHomepage()
		}
	case game.StatusLevelSummary:
		m.handleSummaryKey(action, snap)
	case game.StatusFailed:
		if action == ActionConfirm || action == ActionBack {
			m.session.ReturnToHomepage()
		}
	}

	return m, m.afterEvent()
}

func (m *Model) handleHomepageKey(action Action) {
	switch action {
	case ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case ActionDown:
		if m.cursor < game.MaxLevel {
			m.cursor++
		}
	case ActionConfirm:
		if m.cursor == 0 {
			m.session.StartGame()
		} else {
			// Silently ignored for locked levels, per the rules.
			m.session.StartGameAtLevel(m.cursor)
		}
	}
}

func (m *Model) handleSummaryKey(action Action, snap game.Snapshot) {
	if snap.Summary == nil {
		return
	}
	switch snap.Summary.Kind {
	case game.SummaryWin:
		if action == ActionConfirm || action == ActionContinue {
			if snap.Level == game.MaxLevel {
				m.session.ReturnToHomepage()
			} else {
				m.session.ContinueToNextLevel()
			}
		}
	case game.SummaryRetry:
		if action == ActionConfirm || action == ActionRetry {
			m.session.RetryLevel()
		}
	}
	if action == ActionBack {
		m.session.ReturnToHomepage()
	}
}

// afterEvent records finished runs on state transitions and (re)starts the
// tick chain when a level has just begun.
func (m *Model) afterEvent() tea.Cmd {
	snap := m.session.Snapshot()
	if snap.Status != m.lastStatus {
		m.recordRun(snap)
		m.lastStatus = snap.Status
	}
	m.lastLevel = snap.Level

	if m.session.Active() && !m.ticking {
		m.ticking = true
		return tickCmd(m.interval)
	}
	return nil
}

// recordRun persists level outcomes, best-effort.
func (m *Model) recordRun(snap game.Snapshot) {
	if m.store == nil {
		return
	}

	switch snap.Status {
	case game.StatusLevelSummary:
		outcome := storage.OutcomeRetry
		if snap.Summary != nil && snap.Summary.Kind == game.SummaryWin {
			outcome = storage.OutcomeWin
		}
		//nolint:errcheck // Best-effort save, the game continues regardless
		m.store.SaveRun(snap.Level, snap.Score, outcome)
	case game.StatusFailed:
		// The session has already reset its level by now; record the
		// level the run actually died on.
		level := m.lastLevel
		if level < game.MinLevel {
			level = snap.Level
		}
		//nolint:errcheck // Best-effort save, the game continues regardless
		m.store.SaveRun(level, 0, storage.OutcomeGameOver)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render(m.session.Snapshot())
}

// Run starts a local Bubble Tea program for one session.
func Run(session *game.Session, store *storage.Store, cfg config.Config, width, height int) error {
	p := tea.NewProgram(
		NewModel(session, store, cfg, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
