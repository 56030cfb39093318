// Package viz renders grids for terminal inspection: step-size profiles
// as ascii plots and styled per-axis summaries.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// StepProfile plots the cell sizes along one axis.
func StepProfile(bounds grid.Coords1D, axis grid.Axis, width, height int) string {
	sizes := bounds.Sizes()
	if len(sizes) == 0 {
		return dimStyle.Render(fmt.Sprintf("axis %s: no cells", axis))
	}
	if len(sizes) == 1 {
		// asciigraph needs at least two samples.
		sizes = append(sizes, sizes[0])
	}
	return asciigraph.Plot(sizes,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("cell size along %s (µm)", axis)),
	)
}

// Summary renders per-axis cell counts, extents and step ranges.
func Summary(g *grid.Grid) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("grid summary"))
	b.WriteString("\n")

	cells := g.NumCells()
	b.WriteString(labelStyle.Render("total cells"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d (%d x %d x %d)", cells[0]*cells[1]*cells[2], cells[0], cells[1], cells[2])))
	b.WriteString("\n")

	for a, axis := range []grid.Axis{grid.X, grid.Y, grid.Z} {
		bounds := g.Boundaries.Along(axis)
		b.WriteString(labelStyle.Render(fmt.Sprintf("axis %s", axis)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(
			"%d cells, span [%.4g, %.4g], dl %.4g..%.4g",
			cells[a], bounds[0], bounds[len(bounds)-1], bounds.MinStep(), bounds.MaxStep(),
		)))
		b.WriteString("\n")
	}
	return b.String()
}
