package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dailycheck/internal/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state == StateEditing {
			return m.updateForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 3
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + 3) % 3
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
		case key.Matches(msg, m.keys.Window):
			if m.state == StateStats || m.state == StateHistory {
				m.window = nextWindow(m.window)
				m.refresh()
			}
		case key.Matches(msg, m.keys.Edit):
			if m.state == StateDaily {
				return m.startEditing()
			}
		}
	}

	if m.state == StateEditing {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) startEditing() (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = StateEditing
	m.formModel = NewEntryFormModel(m.todayEntry)
	m.form = NewEntryForm(m.formModel, m.today)
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		entry, err := m.formModel.Entry()
		if err != nil {
			m.statusErr = err.Error()
		} else if _, err := m.tracker.RecordDay(m.today, entry); err != nil {
			m.statusErr = err.Error()
		}
		m.state = m.previousState
		m.form = nil
		m.formModel = nil
		m.refresh()
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		m.formModel = nil
		return m, nil
	}

	return m, cmd
}

func nextWindow(w stats.Window) stats.Window {
	switch w {
	case stats.Last7:
		return stats.Last30
	case stats.Last30:
		return stats.Lifetime
	default:
		return stats.Last7
	}
}
