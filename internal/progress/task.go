package progress

import (
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Task is a single entry on a day's list. Time is "HH:MM" or empty.
// IsEvent is fixed at creation and never changes afterwards.
// Notified records that a reminder already fired for this task today,
// so reminders survive a reload without firing twice.
type Task struct {
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	Time     string `json:"time,omitempty"`
	IsEvent  bool   `json:"isEvent"`
	Notified bool   `json:"notified,omitempty"`
}

// DayRecord holds a date's tasks in insertion order plus the derived
// completed count. Completed is always recomputed by full recount,
// never adjusted incrementally.
type DayRecord struct {
	Tasks     []Task `json:"tasks"`
	Completed int    `json:"completed"`
}

func (d DayRecord) recount() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// TaskLog maps ISO date strings to day records. Keys sort
// chronologically because of the YYYY-MM-DD layout.
type TaskLog map[string]*DayRecord

// TodayItem is a display row for a day's list. Index points back into
// the stored task sequence, which keeps insertion order while the
// visible list shows events first ordered by time.
type TodayItem struct {
	Index   int
	Text    string
	Time    string
	Done    bool
	IsEvent bool
}

// DisplayOrder returns the day's tasks sorted for display: events
// first by time, then plain tasks in insertion order. The stored
// sequence is left untouched.
func DisplayOrder(day DayRecord) []TodayItem {
	items := make([]TodayItem, 0, len(day.Tasks))
	for i, t := range day.Tasks {
		items = append(items, TodayItem{Index: i, Text: t.Text, Time: t.Time, Done: t.Done, IsEvent: t.IsEvent})
	}
	sort.SliceStable(items, func(a, b int) bool {
		ia, ib := items[a], items[b]
		if ia.IsEvent && ib.IsEvent {
			return ia.Time < ib.Time
		}
		return ia.IsEvent && !ib.IsEvent
	})
	return items
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// dayBefore returns the chronological predecessor of an ISO date, or
// empty when the input does not parse.
func dayBefore(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(dateLayout)
}

// ValidClock reports whether a value looks like "HH:MM".
func ValidClock(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
