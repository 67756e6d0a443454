package progress

import "testing"

func TestIntensityLevelBuckets(t *testing.T) {
	cases := []struct {
		count, level int
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {5, 2}, {6, 3}, {10, 3}, {11, 4}, {40, 4},
	}
	for _, tc := range cases {
		if got := IntensityLevel(tc.count); got != tc.level {
			t.Errorf("IntensityLevel(%d) = %d, want %d", tc.count, got, tc.level)
		}
	}
}

func TestHeatmapWindowSplitsAfterSaturday(t *testing.T) {
	e := NewEngine(newMemStore())

	// 2025-01-30 is a Thursday; the window opens on Wednesday the 1st.
	hm := e.HeatmapCells("2025-01-30", 30)
	if len(hm.Columns) != 5 {
		t.Fatalf("expected 5 week columns, got %d", len(hm.Columns))
	}

	real := 0
	for _, col := range hm.Columns {
		for _, cell := range col.Cells {
			if !cell.Placeholder {
				real++
			}
		}
	}
	if real != 30 {
		t.Fatalf("expected 30 dated cells, got %d", real)
	}

	// Sunday through Tuesday precede the window in the first week.
	first := hm.Columns[0]
	for dow := 0; dow < 3; dow++ {
		if !first.Cells[dow].Placeholder {
			t.Fatalf("expected placeholder at weekday %d, got %+v", dow, first.Cells[dow])
		}
	}
	if first.Cells[3].Date != "2025-01-01" {
		t.Fatalf("expected window start on Wednesday, got %q", first.Cells[3].Date)
	}
	if first.Cells[6].Date != "2025-01-04" {
		t.Fatalf("expected first column to close on Saturday, got %q", first.Cells[6].Date)
	}

	last := hm.Columns[4]
	if last.Cells[4].Date != "2025-01-30" {
		t.Fatalf("expected window end on Thursday, got %q", last.Cells[4].Date)
	}
	for dow := 5; dow < 7; dow++ {
		if !last.Cells[dow].Placeholder {
			t.Fatalf("expected trailing placeholder at weekday %d", dow)
		}
	}
}

func TestHeatmapCountsDistinguishZeroFromPlaceholder(t *testing.T) {
	e := NewEngine(newMemStore())
	for i := 0; i < 3; i++ {
		completeTask(t, e, "2025-01-15", "work")
	}

	hm := e.HeatmapCells("2025-01-30", 30)

	var active, quiet HeatmapCell
	for _, col := range hm.Columns {
		for _, cell := range col.Cells {
			switch cell.Date {
			case "2025-01-15":
				active = cell
			case "2025-01-16":
				quiet = cell
			}
		}
	}
	if active.Count != 3 || active.Level != 2 {
		t.Fatalf("expected count 3 level 2, got %+v", active)
	}
	if quiet.Placeholder || quiet.Count != 0 || quiet.Level != 0 {
		t.Fatalf("zero-activity day must be a real level-0 cell, got %+v", quiet)
	}
}

func TestHeatmapMonthLabelsAreSparse(t *testing.T) {
	e := NewEngine(newMemStore())

	// 2025-02-05 back 30 days reaches into January.
	hm := e.HeatmapCells("2025-02-05", 30)

	var labels []string
	for _, col := range hm.Columns {
		if col.MonthLabel != "" {
			labels = append(labels, col.MonthLabel)
		}
	}
	if len(labels) != 2 || labels[0] != "Jan" || labels[1] != "Feb" {
		t.Fatalf("expected one Jan and one Feb label, got %v", labels)
	}
	if hm.Columns[0].MonthLabel != "Jan" {
		t.Fatalf("expected Jan on the first column, got %q", hm.Columns[0].MonthLabel)
	}
}

func TestHeatmapDefaultsAndBadInput(t *testing.T) {
	e := NewEngine(newMemStore())
	if hm := e.HeatmapCells("2025-01-30", 0); len(hm.Columns) != 5 {
		t.Fatalf("expected default window of %d days, got %d columns", DefaultHeatmapWindow, len(hm.Columns))
	}
	if hm := e.HeatmapCells("not-a-date", 30); hm.Columns != nil {
		t.Fatalf("expected empty heatmap for bad date, got %+v", hm)
	}
}
