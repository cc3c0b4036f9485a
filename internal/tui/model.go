package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dailycheck/internal/dates"
	"dailycheck/internal/models"
	"dailycheck/internal/stats"
	"dailycheck/internal/storage"
	"dailycheck/internal/tracker"
)

type SessionState int

const (
	StateDaily SessionState = iota
	StateStats
	StateHistory
	StateEditing
)

type Model struct {
	store   storage.Provider
	tracker *tracker.Tracker

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	today      string
	todayEntry models.DayEntry
	hasEntry   bool
	streak     models.StreakState
	window     stats.Window
	snapshot   stats.Snapshot
	entries    map[string]models.DayEntry

	form      *huh.Form
	formModel *EntryFormModel

	statusErr string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, trk *tracker.Tracker) Model {
	m := Model{
		store:   store,
		tracker: trk,
		state:   StateDaily,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		today:   dates.Today(),
		window:  stats.Last7,
	}
	m.refresh()
	return m
}

// refresh reloads everything the tabs render from the store.
func (m *Model) refresh() {
	m.statusErr = ""
	m.today = dates.Today()

	entry, err := m.tracker.GetDay(m.today)
	switch {
	case err == nil:
		m.todayEntry = entry
		m.hasEntry = true
	case errors.Is(err, storage.ErrNotFound):
		m.todayEntry = models.DayEntry{}
		m.hasEntry = false
	default:
		m.statusErr = err.Error()
	}

	if streak, err := m.tracker.Streak(); err == nil {
		m.streak = streak
	} else {
		m.statusErr = err.Error()
	}

	if snap, err := m.tracker.Stats(m.window); err == nil {
		m.snapshot = snap
	} else {
		m.statusErr = err.Error()
	}

	if entries, err := m.store.AllEntries(); err == nil {
		m.entries = entries
	} else {
		m.statusErr = err.Error()
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDaily:
		keys = append(keys, m.keys.Edit)
	case StateStats, StateHistory:
		keys = append(keys, m.keys.Window)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}

	var actions []key.Binding
	switch m.state {
	case StateDaily:
		actions = []key.Binding{m.keys.Edit}
	case StateStats, StateHistory:
		actions = []key.Binding{m.keys.Window}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
