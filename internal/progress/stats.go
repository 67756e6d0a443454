package progress

import "time"

const bestStreakScanDays = 365

// Stats are the lifetime totals shown on the progress panel.
type Stats struct {
	TotalCompleted int
	TotalXP        int
	BestStreak     int
}

// Stats sums completions across the whole log and scans the trailing
// year backwards from today for the longest run of active days.
func (e *Engine) Stats(today string) Stats {
	out := Stats{TotalXP: e.state.TotalXP}
	for _, day := range e.log {
		out.TotalCompleted += day.Completed
	}

	end, err := time.Parse(dateLayout, today)
	if err != nil {
		return out
	}
	best, current := 0, 0
	for i := 0; i < bestStreakScanDays; i++ {
		key := end.AddDate(0, 0, -i).Format(dateLayout)
		if day, ok := e.log[key]; ok && day.Completed > 0 {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	out.BestStreak = best
	return out
}
