package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntimofeev/colortrap/internal/game"
)

func (m Model) render(snap game.Snapshot) string {
	var body string
	switch snap.Status {
	case game.StatusHomepage:
		body = m.renderHomepage(snap)
	case game.StatusWaiting:
		body = m.renderWaiting(snap)
	case game.StatusPlaying:
		body = m.renderPlaying(snap)
	case game.StatusLevelSummary:
		body = m.renderSummary(snap)
	case game.StatusFailed:
		body = m.renderFailed(snap)
	}

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderHomepage(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("COLOR TRAP"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("tap any button EXCEPT the named color"))
	b.WriteString("\n\n")

	unlocked := make(map[int]bool, len(snap.Unlocked))
	for _, lvl := range snap.Unlocked {
		unlocked[lvl] = true
	}

	items := make([]string, 0, game.MaxLevel+1)
	items = append(items, "New Game")
	for _, cfg := range game.Levels() {
		label := fmt.Sprintf("Level %d  (%ds, %d buttons)", cfg.ID, cfg.TimeLimit, cfg.ColorArity)
		if !unlocked[cfg.ID] {
			label += "  [locked]"
		}
		items = append(items, label)
	}

	for i, item := range items {
		line := "  " + item
		if i == m.cursor {
			line = selectedStyle.Render("> " + item)
		} else if i > 0 && !unlocked[i] {
			line = lockedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: select • enter: play • q: quit"))
	return b.String()
}

func (m Model) renderWaiting(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("LEVEL %d", snap.Level)))
	b.WriteString("\n\n")
	cfg := game.LevelFor(snap.Level)
	b.WriteString(fmt.Sprintf("Time limit: %ds   Buttons: %d\n", cfg.TimeLimit, cfg.ColorArity))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: start • esc: back"))
	return b.String()
}

func (m Model) renderPlaying(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(m.renderHUD(snap))
	b.WriteString("\n\n")

	word := wordStyles[snap.Forbidden].Render(strings.ToUpper(snap.Forbidden.String()))
	b.WriteString("Don't press: " + word)
	b.WriteString("\n\n")

	buttons := make([]string, 0, len(snap.Board))
	for i, c := range snap.Board {
		btn := buttonStyles[c].Render(fmt.Sprintf(" %d ", i+1))
		buttons = append(buttons, btn)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("1-4: press button • esc: quit to menu"))
	return b.String()
}

func (m Model) renderHUD(snap game.Snapshot) string {
	remaining := fmt.Sprintf("%ds", snap.RemainingSeconds)
	if snap.RemainingSeconds <= 3 {
		remaining = urgentStyle.Render(remaining)
	}
	return hudStyle.Render(fmt.Sprintf(
		"Level %d  Round %d/%d  Score %d  Lives %d  Time ",
		snap.Level, snap.Round+1, game.RoundsPerLevel, snap.Score, snap.Lives,
	)) + remaining
}

func (m Model) renderSummary(snap game.Snapshot) string {
	var b strings.Builder
	if snap.Summary == nil {
		return ""
	}

	switch snap.Summary.Kind {
	case game.SummaryWin:
		b.WriteString(winStyle.Render(fmt.Sprintf("LEVEL %d CLEAR", snap.Level)))
		b.WriteString("\n\n")
		br := snap.Summary.Breakdown
		b.WriteString(fmt.Sprintf("Base        %4d\n", br.Base))
		b.WriteString(fmt.Sprintf("Time bonus  %4d\n", br.Time))
		b.WriteString(fmt.Sprintf("Total       %4d\n", br.Total))
		b.WriteString(fmt.Sprintf("\nScore %d   Lives %d\n\n", snap.Score, snap.Lives))
		if snap.Level == game.MaxLevel {
			b.WriteString(winStyle.Render("All levels complete!"))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("enter: back to menu"))
		} else {
			b.WriteString(helpStyle.Render("enter: next level • esc: menu"))
		}
	case game.SummaryRetry:
		b.WriteString(failStyle.Render("MISS"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Penalty     %4d\n", snap.Summary.Breakdown.Total))
		b.WriteString(fmt.Sprintf("\nScore %d   Lives %d\n\n", snap.Score, snap.Lives))
		b.WriteString(helpStyle.Render("r/enter: retry level • esc: menu"))
	}
	return b.String()
}

func (m Model) renderFailed(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(failStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString("Out of points or lives. Progress resets,\nunlocked levels stay unlocked.\n\n")
	b.WriteString(helpStyle.Render("enter: back to menu"))
	return b.String()
}
