package progress

import "time"

// CheckReminders scans today's events for one scheduled at the
// current wall-clock minute. Each match emits a reminder event once:
// the task's Notified flag is persisted, so a reload within the same
// day cannot re-fire it.
func (e *Engine) CheckReminders(now time.Time) ([]Event, error) {
	today := now.Format(dateLayout)
	clock := now.Format("15:04")

	day, ok := e.log[today]
	if !ok {
		return nil, nil
	}

	var events []Event
	for i := range day.Tasks {
		t := &day.Tasks[i]
		if t.IsEvent && !t.Done && t.Time == clock && !t.Notified {
			t.Notified = true
			events = append(events, ReminderEvent{Date: today, Time: t.Time, Text: t.Text})
		}
	}
	if len(events) == 0 {
		return nil, nil
	}
	return events, e.persistLog()
}
