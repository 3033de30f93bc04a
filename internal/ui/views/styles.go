package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	FilterLabel  lipgloss.Style
	Prompt       lipgloss.Style
	Option       lipgloss.Style
	OptionActive lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardName     lipgloss.Style
	Price        lipgloss.Style
	Category     lipgloss.Style
	CartBar      lipgloss.Style
	CartBox      lipgloss.Style
	CartLine     lipgloss.Style
	CartLineSel  lipgloss.Style
	InfoBox      lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Empty        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		FilterLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		OptionActive: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1),
		CardName: lipgloss.NewStyle().Bold(true),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
		CartBar:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		CartBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(0, 1),
		CartLine:    lipgloss.NewStyle(),
		CartLineSel: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Empty:  lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
