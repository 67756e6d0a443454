package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"trackd/internal/progress"
)

func (m Model) handleUpcomingKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Upcoming.Cursor > 0 {
			m.Upcoming.Cursor--
		}
	case "down", "j":
		if m.Upcoming.Cursor < len(m.Upcoming.Items)-1 {
			m.Upcoming.Cursor++
		}
	case "d":
		item, ok := m.currentUpcomingItem()
		if ok {
			m = m.removeUpcoming(item)
		}
	}
	return m
}

func (m Model) removeUpcoming(item progress.UpcomingEvent) Model {
	if m.Engine == nil {
		return m
	}
	if err := m.Engine.RemoveUpcoming(item.Date, item.Time, item.Text); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("removed event: %s %s %s", item.Date, item.Time, item.Text), IsError: false}
	m.refreshAll()
	return m
}

func (m Model) currentUpcomingItem() (progress.UpcomingEvent, bool) {
	if len(m.Upcoming.Items) == 0 {
		return progress.UpcomingEvent{}, false
	}
	if m.Upcoming.Cursor < 0 || m.Upcoming.Cursor >= len(m.Upcoming.Items) {
		return progress.UpcomingEvent{}, false
	}
	return m.Upcoming.Items[m.Upcoming.Cursor], true
}
