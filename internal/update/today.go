package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"trackd/internal/progress"
)

func (m Model) handleTodayKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Today.Cursor > 0 {
			m.Today.Cursor--
		}
	case "down", "j":
		if m.Today.Cursor < len(m.Today.Items)-1 {
			m.Today.Cursor++
		}
	case "a", "i":
		m.Today.CaptureMode = true
		m.quickAddInput.Focus()
		m.quickAddInput.SetValue("")
		m.Status = StatusBar{Text: "quick add active", IsError: false}
	case " ", "x":
		item, ok := m.currentTodayItem()
		if ok {
			m = m.toggleTask(item.Index, !item.Done)
		}
	case "d":
		item, ok := m.currentTodayItem()
		if ok {
			m = m.deleteTask(item.Index, item.Text)
		}
	}
	return m
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Today.CaptureMode = false
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
		m.Status = StatusBar{Text: "quick add closed", IsError: false}
	case "enter":
		text := strings.TrimSpace(m.quickAddInput.Value())
		m = m.addTask(m.TodayDate, text, "", false)
		m.quickAddInput.SetValue("")
	default:
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) addTask(date, text, clock string, isEvent bool) Model {
	if m.Engine == nil {
		return m
	}
	if strings.TrimSpace(text) == "" {
		// Engine treats blank text as a no-op; mirror that quietly.
		return m
	}
	if _, err := m.Engine.AddTask(date, text, clock, isEvent); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", text), IsError: false}
	m.refreshAll()
	return m
}

// toggleTask flips a task and, on a completion, runs the streak and
// challenge passes. Index refers to the stored sequence, not the
// display order.
func (m Model) toggleTask(index int, done bool) Model {
	if m.Engine == nil {
		return m
	}
	_, events, err := m.Engine.ToggleTask(m.TodayDate, index, done)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
	if done {
		events = append(events, m.completionPipeline(m.TodayDate)...)
	}
	m.dispatchEvents(events)
	m.refreshAll()
	return m
}

func (m Model) deleteTask(index int, text string) Model {
	if m.Engine == nil {
		return m
	}
	if _, err := m.Engine.DeleteTask(m.TodayDate, index); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", text), IsError: false}
	m.refreshAll()
	return m
}

// completionPipeline is the post-completion sequence: streak update
// first, then challenge evaluation against the mutated day.
func (m *Model) completionPipeline(date string) []progress.Event {
	if _, err := m.Engine.UpdateStreak(m.TodayDate); err != nil {
		m.LastError = err
	}
	_, events, err := m.Engine.CheckChallenges(date)
	if err != nil {
		m.LastError = err
	}
	return events
}

func (m Model) currentTodayItem() (progress.TodayItem, bool) {
	if len(m.Today.Items) == 0 {
		return progress.TodayItem{}, false
	}
	if m.Today.Cursor < 0 || m.Today.Cursor >= len(m.Today.Items) {
		return progress.TodayItem{}, false
	}
	return m.Today.Items[m.Today.Cursor], true
}
