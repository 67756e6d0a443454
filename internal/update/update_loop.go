package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"trackd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Poller != nil {
		return waitForTickCmd(m.Poller.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}

		keyStr := typed.String()
		if m.CurrentView == ViewToday && m.Today.CaptureMode && keyStr != "ctrl+c" &&
			keyStr != m.Keys.Today && keyStr != m.Keys.Upcoming && keyStr != m.Keys.Progress &&
			keyStr != m.Keys.Help && keyStr != "/" && keyStr != m.Keys.Quit {
			return m.handleQuickAddKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Today:
			m.CurrentView = ViewToday
			return m, nil
		case m.Keys.Upcoming:
			m.CurrentView = ViewUpcoming
			return m, nil
		case m.Keys.Progress:
			m.CurrentView = ViewProgress
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.CurrentView == ViewToday {
			return m.handleTodayKey(typed), nil
		}
		if m.CurrentView == ViewUpcoming {
			return m.handleUpcomingKey(typed), nil
		}
	case spinner.TickMsg:
		if m.spinnerActive {
			var cmd tea.Cmd
			m.reloadSpinner, cmd = m.reloadSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewToday {
				m.Today.CaptureMode = true
				m.quickAddInput.Focus()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		if strings.Contains(strings.ToLower(typed.Text), "reload complete") {
			m.spinnerActive = false
		}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case StoreChangedMsg:
		return m.onStoreChanged()
	case ReminderTickMsg:
		return m.onReminderTick(typed.At)
	}

	return m, nil
}

// onStoreChanged discards the in-memory snapshot in favor of the
// other instance's write and re-derives all panels.
func (m Model) onStoreChanged() (tea.Model, tea.Cmd) {
	if m.Engine == nil {
		return m, nil
	}
	m.Engine.Reload()
	m.refreshAll()
	m.Status = StatusBar{Text: "store changed, reload complete", IsError: false}
	if !m.spinnerActive {
		m.spinnerActive = true
		return m, tea.Batch(
			m.reloadSpinner.Tick,
			tea.Tick(time.Second, func(time.Time) tea.Msg { return SetStatusMsg{Text: "reload complete", IsError: false} }),
		)
	}
	return m, nil
}

func (m Model) onReminderTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.Engine == nil {
		return m, nil
	}
	// Crossing midnight turns this tick into a day transition.
	if today := at.Format("2006-01-02"); today != m.TodayDate {
		m.TodayDate = today
		if _, err := m.Engine.UpdateStreak(today); err != nil {
			m.LastError = err
		}
	}
	events, err := m.Engine.CheckReminders(at)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
	m.dispatchEvents(events)
	m.refreshAll()
	if m.Poller != nil {
		return m, waitForTickCmd(m.Poller.C())
	}
	return m, nil
}

func waitForTickCmd(ch <-chan time.Time) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		at, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderTickMsg{At: at}
	}
}

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}
	// Rendering works on a value copy, so the bubble components sync
	// against the current panel data here rather than in Update.
	m.syncBubbleData()

	status := m.Status.Text
	if m.spinnerActive {
		status = m.reloadSpinner.View() + " " + status
	}

	left, right := m.renderPanes()
	data := views.AppData{
		Header:       m.renderHeader(),
		LeftPane:     left,
		RightPane:    right,
		StatusLine:   status,
		Footer:       m.renderFooter(),
		Notification: m.renderNotificationsView(),
	}
	out := views.RenderApp(data)
	if m.Palette.Active {
		out += "\n" + views.RenderCommandPalette(true, m.commandInput.View())
	}
	if m.HelpVisible {
		out += "\n" + views.RenderHelp(string(m.CurrentView))
	}
	return out
}
