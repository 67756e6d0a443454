package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TodayItemData struct {
	Text    string
	Time    string
	Done    bool
	IsEvent bool
}

type TodayPanelData struct {
	Date      string
	Items     []TodayItemData
	Cursor    int
	Completed int
	QuickAdd  string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today · %s · %d done\n\n", data.Date, data.Completed)
	if len(data.Items) == 0 {
		b.WriteString("(no tasks yet, press a to add one)\n")
	}
	for i, item := range data.Items {
		marker := "[ ]"
		if item.Done {
			marker = "[x]"
		}
		line := marker
		if item.IsEvent && item.Time != "" {
			line += " " + timeStyle.Render(item.Time)
		}
		text := item.Text
		if item.Done {
			text = doneStyle.Render(text)
		}
		line += " " + text
		if i == data.Cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if data.QuickAdd != "" {
		b.WriteString("\n" + data.QuickAdd)
	}
	return strings.TrimRight(b.String(), "\n")
}

type SummaryPanelData struct {
	Level      int
	XP         int
	NextXP     int
	XPBarView  string
	Streak     int
	Completed  int
	BadgeCount int
}

func RenderSummaryPanel(data SummaryPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d\n", data.Level)
	fmt.Fprintf(&b, "%d / %d XP\n%s\n\n", data.XP, data.NextXP, data.XPBarView)
	fmt.Fprintf(&b, "Streak: %d day(s)\n", data.Streak)
	fmt.Fprintf(&b, "Completed today: %d\n", data.Completed)
	fmt.Fprintf(&b, "Badges: %d", data.BadgeCount)
	return b.String()
}

type UpcomingItemData struct {
	Date string
	Time string
	Text string
}

type UpcomingPanelData struct {
	Items  []UpcomingItemData
	Cursor int
}

func RenderUpcomingPanel(data UpcomingPanelData) string {
	var b strings.Builder
	b.WriteString("Upcoming events\n\n")
	if len(data.Items) == 0 {
		b.WriteString("(no upcoming events)")
		return b.String()
	}
	for i, item := range data.Items {
		line := fmt.Sprintf("%s %s  %s", item.Date, timeStyle.Render(item.Time), item.Text)
		if i == data.Cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderUpcomingDetail(item UpcomingItemData) string {
	return fmt.Sprintf("event:\n%s\n%s %s\n\npress d to remove", item.Text, item.Date, item.Time)
}

type BadgeData struct {
	ID   string
	Name string
}

type ProgressPanelData struct {
	Level          int
	XP             int
	NextXP         int
	XPBarView      string
	Streak         int
	Badges         []BadgeData
	ChallengesView string
}

func RenderProgressPanel(data ProgressPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d · %d / %d XP\n%s\n\n", data.Level, data.XP, data.NextXP, data.XPBarView)
	fmt.Fprintf(&b, "Streak: %d day(s)\n\n", data.Streak)
	b.WriteString("Badges: ")
	if len(data.Badges) == 0 {
		b.WriteString("(none yet)")
	} else {
		names := make([]string, 0, len(data.Badges))
		for _, badge := range data.Badges {
			name := badge.Name
			if name == "" {
				name = badge.ID
			}
			names = append(names, name)
		}
		b.WriteString(strings.Join(names, " · "))
	}
	if data.ChallengesView != "" {
		b.WriteString("\n\n" + data.ChallengesView)
	}
	return b.String()
}

type HeatmapCellData struct {
	Level       int
	Placeholder bool
}

type HeatmapColumnData struct {
	Cells      [7]HeatmapCellData
	MonthLabel string
}

type HeatmapData struct {
	Columns []HeatmapColumnData
}

var heatmapLevelStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

var placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Faint(true)

// RenderHeatmapPanel draws week columns left to right with a sparse
// month-label row on top. Placeholder cells render as faint dots so
// they cannot be mistaken for real zero-activity days.
func RenderHeatmapPanel(data HeatmapData) string {
	var b strings.Builder
	b.WriteString("Activity\n")

	labels := make([]string, 0, len(data.Columns))
	for _, col := range data.Columns {
		label := col.MonthLabel
		if len(label) > 3 {
			label = label[:3]
		}
		labels = append(labels, fmt.Sprintf("%-3s", label))
	}
	b.WriteString(strings.Join(labels, " ") + "\n")

	for row := 0; row < 7; row++ {
		cells := make([]string, 0, len(data.Columns))
		for _, col := range data.Columns {
			cell := col.Cells[row]
			if cell.Placeholder {
				cells = append(cells, placeholderStyle.Render("·")+"   ")
				continue
			}
			level := cell.Level
			if level < 0 {
				level = 0
			}
			if level > 4 {
				level = 4
			}
			cells = append(cells, heatmapLevelStyles[level].Render("■")+"   ")
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, ""), " ") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type StatsPanelData struct {
	TotalCompleted int
	TotalXP        int
	BestStreak     int
}

func RenderStatsPanel(data StatsPanelData) string {
	return fmt.Sprintf("Total tasks: %d\nTotal XP: %d\nBest streak: %d", data.TotalCompleted, data.TotalXP, data.BestStreak)
}
