package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Item        lipgloss.Style
	SelectedBg  lipgloss.Style
	MarqueeBg   lipgloss.Style
	MarqueeEdge lipgloss.Style
	Anchor      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Item: lipgloss.NewStyle(),
		SelectedBg: lipgloss.NewStyle().
			Background(lipgloss.Color("24")).
			Foreground(lipgloss.Color("231")),
		MarqueeBg: lipgloss.NewStyle().
			Background(lipgloss.Color("238")),
		MarqueeEdge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")),
		Anchor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).Bold(true),
	}
}
