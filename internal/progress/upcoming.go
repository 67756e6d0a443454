package progress

import "sort"

// UpcomingEvent is a timed event entry projected across the log.
type UpcomingEvent struct {
	Date string
	Time string
	Text string
	Done bool
}

// UpcomingEvents returns every event with a time on dates from today
// onwards, inclusive, ordered by date then time. Plain tasks are
// excluded even when they carry a time.
func (e *Engine) UpcomingEvents(today string) []UpcomingEvent {
	out := make([]UpcomingEvent, 0)
	for date, day := range e.log {
		if date < today {
			continue
		}
		for _, t := range day.Tasks {
			if t.IsEvent && t.Time != "" {
				out = append(out, UpcomingEvent{Date: date, Time: t.Time, Text: t.Text, Done: t.Done})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Date == out[b].Date {
			return out[a].Time < out[b].Time
		}
		return out[a].Date < out[b].Date
	})
	return out
}

// RemoveUpcoming deletes the first task on the date matching the
// (time, text) pair. No exact match means a silent no-op; the day
// record is dropped when it empties.
func (e *Engine) RemoveUpcoming(date, clock, text string) error {
	day, ok := e.log[date]
	if !ok {
		return nil
	}
	idx := -1
	for i, t := range day.Tasks {
		if t.Time == clock && t.Text == text {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	day.Tasks = append(day.Tasks[:idx], day.Tasks[idx+1:]...)
	if len(day.Tasks) == 0 {
		delete(e.log, date)
	} else {
		day.Completed = day.recount()
	}
	return e.persistLog()
}
