package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dailycheck/internal/models"
)

const barWidth = 20

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDaily:
		content = docStyle.Render(m.viewDaily())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateHistory:
		content = docStyle.Render(m.viewHistory())
	case StateEditing:
		content = m.form.View()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusErr != "" {
		sections = append(sections, missedStyle.Render("⚠ "+m.statusErr))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Daily", "Stats", "History"} {
		if m.state == SessionState(i) || (m.state == StateEditing && m.previousState == SessionState(i)) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDaily() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Daily check · %s", m.today)))
	b.WriteString("\n\n")

	if !m.hasEntry {
		b.WriteString(dimStyle.Render("No entry recorded yet. Press 'e' to fill in today's questions."))
	} else {
		for _, f := range models.HabitFields {
			mark := missedStyle.Render("✗")
			if m.todayEntry.Habit(f) {
				mark = doneStyle.Render("✓")
			}
			line := fmt.Sprintf("%s %s", mark, models.HabitLabels[f])
			if note := m.todayEntry.HabitNote(f); note != "" {
				line += dimStyle.Render("  (" + note + ")")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("\nSleep: %.1f h    Rating: %d/10\n", m.todayEntry.SleepHours, m.todayEntry.Rating))
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("🔥 Current streak: %d day(s)    Best: %d day(s)", m.streak.CurrentStreak, m.streak.BestStreak))
	if m.streak.LastCompletedDate != nil {
		b.WriteString(dimStyle.Render("    last completed " + *m.streak.LastCompletedDate))
	}

	return b.String()
}

func (m Model) viewStats() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Statistics · %s", m.snapshot.Window)))
	b.WriteString("\n\n")

	if m.snapshot.TotalDays == 0 {
		b.WriteString(dimStyle.Render("No completed days in this window."))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Completed days: %d\n", m.snapshot.TotalDays))
	b.WriteString(fmt.Sprintf("Sleep: avg %.1f h (%.1f-%.1f)    Rating: avg %.1f (%d-%d)\n\n",
		m.snapshot.AvgSleepHours, m.snapshot.MinSleepHours, m.snapshot.MaxSleepHours,
		m.snapshot.AvgRating, m.snapshot.MinRating, m.snapshot.MaxRating))

	for _, h := range m.snapshot.Habits {
		b.WriteString(fmt.Sprintf("%-22s %s %3d%%  (%d/%d)\n",
			h.Label, renderStatBar(h.Percent), h.Percent, h.Count, m.snapshot.TotalDays))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press 'w' to cycle the window."))
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("History · %s", m.snapshot.Window)))
	b.WriteString("\n\n")

	if len(m.snapshot.RecentDays) == 0 {
		b.WriteString(dimStyle.Render("No completed days in this window."))
		return b.String()
	}

	for _, day := range m.snapshot.RecentDays {
		entry := m.entries[day]
		done := 0
		for _, f := range models.HabitFields {
			if entry.Habit(f) {
				done++
			}
		}
		b.WriteString(fmt.Sprintf("%s  %d/%d habits  sleep %.1f h  rating %d/10\n",
			day, done, len(models.HabitFields), entry.SleepHours, entry.Rating))
	}

	return b.String()
}

func renderStatBar(percent int) string {
	filled := percent * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barTrackStyle.Render(strings.Repeat("░", barWidth-filled))
}
