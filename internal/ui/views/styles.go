package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Pane           lipgloss.Style
	PaneTitle      lipgloss.Style
	Cursor         lipgloss.Style
	Bar            lipgloss.Style
	BarSelected    lipgloss.Style
	BarDim         lipgloss.Style
	Legend         lipgloss.Style
	LegendSelected lipgloss.Style
	Label          lipgloss.Style
	LabelSelected  lipgloss.Style
	Status         lipgloss.Style
	Mode           lipgloss.Style
	Help           lipgloss.Style
	Dim            lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		PaneTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Cursor:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Bar:            lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		BarSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		BarDim:         lipgloss.NewStyle().Faint(true),
		Legend:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LegendSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		LabelSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Mode: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Help: lipgloss.NewStyle().Faint(true),
		Dim:  lipgloss.NewStyle().Faint(true),
	}
}
