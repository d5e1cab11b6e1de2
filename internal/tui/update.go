package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(m.width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < paramCount-1 {
				m.cursor++
			}
		case "left", "h":
			m.step(-1)
		case "right", "l":
			m.step(1)
		}
	}
	return m, nil
}

// step adjusts the selected parameter by one increment in dir.
func (m *Model) step(dir int) {
	switch m.cursor {
	case paramUsageRatio:
		m.usageRatio = clampInt(m.usageRatio+5*dir, 5, 100)
	case paramSavingShare:
		m.savingShare = clampInt(m.savingShare+5*dir, 0, 100)
	case paramSavingYield:
		m.savingYield = clampFloat(m.savingYield+0.5*float64(dir), 0, 20)
	case paramFundYield:
		m.fundYield = clampFloat(m.fundYield+0.5*float64(dir), 0, 30)
	}
	m.recalculate()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
