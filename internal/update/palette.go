package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"trackd/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			date := a.Date
			if date == "" {
				date = m.TodayDate
			}
			if _, err := m.Engine.AddTask(date, a.Text, a.Time, a.Event); err != nil {
				return commands.Result{}, err
			}
			m.refreshAll()
			kind := "task"
			if a.Event {
				kind = "event"
			}
			return commands.Result{Message: fmt.Sprintf("added %s on %s: %s", kind, date, a.Text)}, nil
		},
		Remove: func(r commands.RemoveArgs) (commands.Result, error) {
			if err := m.Engine.RemoveUpcoming(r.Date, r.Time, r.Text); err != nil {
				return commands.Result{}, err
			}
			m.refreshAll()
			return commands.Result{Message: fmt.Sprintf("removed %s %s %s", r.Date, r.Time, r.Text)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.View {
			case "today":
				m.CurrentView = ViewToday
			case "upcoming":
				m.CurrentView = ViewUpcoming
			case "progress":
				m.CurrentView = ViewProgress
			}
			return commands.Result{Message: fmt.Sprintf("show %s", s.View)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
