package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"trackd/internal/progress"
	"trackd/internal/views"
)

func (m Model) renderHeader() string {
	return fmt.Sprintf("trackd · %s  [1]Today [2]Upcoming [3]Progress", m.TodayDate)
}

func (m Model) renderFooter() string {
	return m.helpModel.ShortHelpView(m.footerBindings())
}

func (m Model) footerBindings() []key.Binding {
	global := []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
	switch m.CurrentView {
	case ViewUpcoming:
		return append([]key.Binding{
			key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		}, global...)
	case ViewProgress:
		return global
	default:
		return append([]key.Binding{
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
			key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
		}, global...)
	}
}

func (m Model) renderPanes() (string, string) {
	switch m.CurrentView {
	case ViewUpcoming:
		return m.renderUpcomingPane(), m.renderUpcomingDetailPane()
	case ViewProgress:
		return m.renderProgressPane(), m.renderHeatmapPane()
	default:
		return m.renderTodayPane(), m.renderSummaryPane()
	}
}

func (m Model) renderTodayPane() string {
	items := make([]views.TodayItemData, 0, len(m.Today.Items))
	for _, item := range m.Today.Items {
		items = append(items, views.TodayItemData{
			Text:    item.Text,
			Time:    item.Time,
			Done:    item.Done,
			IsEvent: item.IsEvent,
		})
	}
	quickAdd := ""
	if m.Today.CaptureMode {
		quickAdd = m.quickAddInput.View()
	}
	return views.RenderTodayPanel(views.TodayPanelData{
		Date:      m.TodayDate,
		Items:     items,
		Cursor:    m.Today.Cursor,
		Completed: m.Today.Completed,
		QuickAdd:  quickAdd,
	})
}

func (m Model) renderSummaryPane() string {
	return views.RenderSummaryPanel(views.SummaryPanelData{
		Level:      m.State.Level,
		XP:         m.State.XP,
		NextXP:     progress.RequiredXPForNextLevel(m.State.Level),
		XPBarView:  m.xpBar.ViewAs(m.xpPercent()),
		Streak:     m.State.Streak,
		Completed:  m.Today.Completed,
		BadgeCount: len(m.State.Badges),
	})
}

func (m Model) renderUpcomingPane() string {
	items := make([]views.UpcomingItemData, 0, len(m.Upcoming.Items))
	for _, item := range m.Upcoming.Items {
		items = append(items, views.UpcomingItemData{Date: item.Date, Time: item.Time, Text: item.Text})
	}
	return views.RenderUpcomingPanel(views.UpcomingPanelData{Items: items, Cursor: m.Upcoming.Cursor})
}

func (m Model) renderUpcomingDetailPane() string {
	item, ok := m.currentUpcomingItem()
	if !ok {
		return "upcoming:\n(no selection)"
	}
	return views.RenderUpcomingDetail(views.UpcomingItemData{Date: item.Date, Time: item.Time, Text: item.Text})
}

func (m Model) renderProgressPane() string {
	badges := make([]views.BadgeData, 0, len(m.State.Badges))
	for _, id := range m.State.Badges {
		badges = append(badges, views.BadgeData{ID: id, Name: progress.BadgeNames[id]})
	}
	return views.RenderProgressPanel(views.ProgressPanelData{
		Level:          m.State.Level,
		XP:             m.State.XP,
		NextXP:         progress.RequiredXPForNextLevel(m.State.Level),
		XPBarView:      m.xpBar.ViewAs(m.xpPercent()),
		Streak:         m.State.Streak,
		Badges:         badges,
		ChallengesView: m.challengeViewport.View(),
	})
}

func (m Model) renderHeatmapPane() string {
	return views.RenderHeatmapPanel(heatmapData(m.Heatmap)) + "\n" + views.RenderStatsPanel(views.StatsPanelData{
		TotalCompleted: m.Stats.TotalCompleted,
		TotalXP:        m.Stats.TotalXP,
		BestStreak:     m.Stats.BestStreak,
	})
}

func heatmapData(h progress.Heatmap) views.HeatmapData {
	out := views.HeatmapData{Columns: make([]views.HeatmapColumnData, 0, len(h.Columns))}
	for _, col := range h.Columns {
		var cells [7]views.HeatmapCellData
		for i, cell := range col.Cells {
			cells[i] = views.HeatmapCellData{Level: cell.Level, Placeholder: cell.Placeholder}
		}
		out.Columns = append(out.Columns, views.HeatmapColumnData{Cells: cells, MonthLabel: col.MonthLabel})
	}
	return out
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) xpPercent() float64 {
	next := progress.RequiredXPForNextLevel(m.State.Level)
	if next <= 0 {
		return 0
	}
	pct := float64(m.State.XP) / float64(next)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return pct
}

func (m *Model) syncBubbleData() {
	m.quickAddInput.Width = 42
	if m.CurrentView == ViewToday && m.Today.CaptureMode {
		m.quickAddInput.Focus()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	m.challengeViewport.SetContent(views.RenderMarkdown(m.challengeMarkdown()))
}

// challengeMarkdown builds the Progress pane's challenge list, one
// catalog entry per line with completion marks and active progress.
func (m Model) challengeMarkdown() string {
	out := "## Challenges\n\n"
	completed := make(map[string]bool, len(m.State.CompletedChallenges))
	for _, id := range m.State.CompletedChallenges {
		completed[id] = true
	}
	active := make(map[string]progress.ChallengeProgress, len(m.State.ActiveChallenges))
	for _, entry := range m.State.ActiveChallenges {
		active[entry.ID] = entry
	}
	for _, def := range progress.Catalog {
		mark := " "
		if completed[def.ID] {
			mark = "x"
		}
		line := fmt.Sprintf("- [%s] **%s**: %s (+%d XP)", mark, def.Name, def.Description, def.XP)
		if entry, ok := active[def.ID]; ok && !completed[def.ID] {
			line += fmt.Sprintf(" · %d/%d", entry.Progress, entry.Goal)
		}
		out += line + "\n"
	}
	return out
}
