package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ntimofeev/colortrap/internal/game"
)

// buttonStyles renders each palette color as a wide colored block.
var buttonStyles = map[game.Color]lipgloss.Style{
	game.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")).Padding(1, 4).Bold(true),
	game.Green:  lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Padding(1, 4).Bold(true),
	game.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")).Padding(1, 4).Bold(true),
	game.Red:    lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")).Padding(1, 4).Bold(true),
}

// wordStyles color just the spoken color word in instruction lines.
var wordStyles = map[game.Color]lipgloss.Style{
	game.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	game.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	game.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	game.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
