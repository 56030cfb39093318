// Package tui provides an interactive terminal inspector for built grids.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fdtdgrid/internal/grid"
	"github.com/san-kum/fdtdgrid/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type view int

const (
	viewProfile view = iota
	viewBounds
)

type model struct {
	g      *grid.Grid
	runID  string
	axis   grid.Axis
	view   view
	offset int
	width  int
	height int
}

// Inspect opens the interactive inspector for a built grid.
func Inspect(g *grid.Grid, runID string) error {
	m := model{g: g, runID: runID, width: 80, height: 24}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.axis = (m.axis + 1) % 3
			m.offset = 0
		case "shift+tab", "left", "h":
			m.axis = (m.axis + 2) % 3
			m.offset = 0
		case "v":
			if m.view == viewProfile {
				m.view = viewBounds
			} else {
				m.view = viewProfile
			}
		case "down", "j":
			if m.view == viewBounds {
				m.offset++
			}
		case "up", "k":
			if m.view == viewBounds && m.offset > 0 {
				m.offset--
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	bounds := m.g.Boundaries.Along(m.axis)
	title := fmt.Sprintf(" %s ", m.runID)
	b.WriteString(cyan.Render(title))
	b.WriteString(dim.Render(fmt.Sprintf("axis %s | %d cells", m.axis, bounds.NumCells())))
	b.WriteString("\n\n")

	switch m.view {
	case viewProfile:
		b.WriteString(viz.StepProfile(bounds, m.axis, m.width-10, m.height-8))
	case viewBounds:
		rows := m.height - 6
		if rows < 1 {
			rows = 1
		}
		start := m.offset
		if start > len(bounds)-1 {
			start = len(bounds) - 1
		}
		for i := start; i < len(bounds) && i < start+rows; i++ {
			b.WriteString(yellow.Render(fmt.Sprintf("%5d ", i)))
			b.WriteString(white.Render(fmt.Sprintf("%12.6g", bounds[i])))
			if i > 0 {
				b.WriteString(dim.Render(fmt.Sprintf("   dl=%.6g", bounds[i]-bounds[i-1])))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("tab: axis  v: view  j/k: scroll  q: quit"))
	return b.String()
}
