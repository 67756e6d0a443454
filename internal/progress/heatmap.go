package progress

import "time"

const DefaultHeatmapWindow = 30

// HeatmapCell is one square in the activity grid. Placeholder cells
// exist only to pad a column's weekday rows; they carry no date and
// never represent a real zero-activity day.
type HeatmapCell struct {
	Date        string
	Count       int
	Level       int
	Placeholder bool
}

// HeatmapColumn is one week of the grid, Sunday-first. MonthLabel is
// set on the first column where a new month appears and left empty
// elsewhere.
type HeatmapColumn struct {
	Cells      [7]HeatmapCell
	MonthLabel string
}

type Heatmap struct {
	Columns []HeatmapColumn
}

// IntensityLevel buckets a completed count into the 0..4 display
// scale. The buckets widen deliberately so a handful of extra tasks
// does not saturate the display.
func IntensityLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 10:
		return 3
	default:
		return 4
	}
}

// HeatmapCells bins the trailing window of dates ending at today into
// week columns. A column closes after Saturday or at the final day of
// the window.
func (e *Engine) HeatmapCells(today string, window int) Heatmap {
	if window <= 0 {
		window = DefaultHeatmapWindow
	}
	end, err := time.Parse(dateLayout, today)
	if err != nil {
		return Heatmap{}
	}
	start := end.AddDate(0, 0, -(window - 1))

	var weeks [][]time.Time
	var current []time.Time
	for i := 0; i < window; i++ {
		date := start.AddDate(0, 0, i)
		current = append(current, date)
		if date.Weekday() == time.Saturday || i == window-1 {
			weeks = append(weeks, current)
			current = nil
		}
	}

	out := Heatmap{Columns: make([]HeatmapColumn, len(weeks))}
	lastMonth := time.Month(0)
	for w, week := range weeks {
		for dow := 0; dow < 7; dow++ {
			date, ok := dateWithWeekday(week, time.Weekday(dow))
			if !ok {
				out.Columns[w].Cells[dow] = HeatmapCell{Placeholder: true}
				continue
			}
			key := date.Format(dateLayout)
			count := 0
			if day, found := e.log[key]; found {
				count = day.Completed
			}
			out.Columns[w].Cells[dow] = HeatmapCell{
				Date:  key,
				Count: count,
				Level: IntensityLevel(count),
			}
			if date.Month() != lastMonth {
				lastMonth = date.Month()
				if out.Columns[w].MonthLabel == "" {
					out.Columns[w].MonthLabel = date.Format("Jan")
				}
			}
		}
	}
	return out
}

func dateWithWeekday(week []time.Time, dow time.Weekday) (time.Time, bool) {
	for _, d := range week {
		if d.Weekday() == dow {
			return d, true
		}
	}
	return time.Time{}, false
}
