package progress

import (
	"encoding/json"
	"testing"
)

type memStore struct {
	data map[string][]byte
	sets int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(key string) ([]byte, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *memStore) Set(key string, value []byte) error {
	s.sets++
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func TestAddTaskCreatesDayRecord(t *testing.T) {
	e := NewEngine(newMemStore())

	day, err := e.AddTask("2025-01-04", "Write report", "", false)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if len(day.Tasks) != 1 || day.Tasks[0].Text != "Write report" {
		t.Fatalf("unexpected day record: %+v", day)
	}
	if day.Completed != 0 {
		t.Fatalf("expected zero completed, got %d", day.Completed)
	}
}

func TestAddTaskRejectsBlankText(t *testing.T) {
	store := newMemStore()
	e := NewEngine(store)

	day, err := e.AddTask("2025-01-04", "   ", "", false)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if len(day.Tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(day.Tasks))
	}
	if store.sets != 0 {
		t.Fatalf("blank add must not persist, saw %d writes", store.sets)
	}
}

func TestAddTaskEventRequiresTime(t *testing.T) {
	e := NewEngine(newMemStore())

	day, err := e.AddTask("2025-01-04", "Standup", "", true)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if day.Tasks[0].IsEvent {
		t.Fatal("event flag must not stick without a time")
	}

	day, err = e.AddTask("2025-01-04", "Standup", "09:30", true)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if !day.Tasks[1].IsEvent {
		t.Fatal("expected event flag with time present")
	}
}

func TestToggleTaskAwardsXPOnCompletionOnly(t *testing.T) {
	e := NewEngine(newMemStore())
	if _, err := e.AddTask("2025-01-04", "Task A", "", false); err != nil {
		t.Fatalf("add task: %v", err)
	}

	day, _, err := e.ToggleTask("2025-01-04", 0, true)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if day.Completed != 1 {
		t.Fatalf("expected completed 1, got %d", day.Completed)
	}
	if got := e.State().TotalXP; got != 10 {
		t.Fatalf("expected 10 XP after completion, got %d", got)
	}

	// Toggling an already-done task again must not pay twice.
	if _, _, err := e.ToggleTask("2025-01-04", 0, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := e.State().TotalXP; got != 10 {
		t.Fatalf("expected XP unchanged on repeat toggle, got %d", got)
	}

	// Unchecking never refunds or awards.
	if _, _, err := e.ToggleTask("2025-01-04", 0, false); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := e.State().TotalXP; got != 10 {
		t.Fatalf("expected XP unchanged on uncheck, got %d", got)
	}
}

func TestToggleAndDeleteOutOfRangeAreNoOps(t *testing.T) {
	e := NewEngine(newMemStore())
	if _, err := e.AddTask("2025-01-04", "Task A", "", false); err != nil {
		t.Fatalf("add task: %v", err)
	}

	if _, _, err := e.ToggleTask("2025-01-04", 5, true); err != nil {
		t.Fatalf("toggle out of range: %v", err)
	}
	if _, _, err := e.ToggleTask("2099-01-01", 0, true); err != nil {
		t.Fatalf("toggle missing date: %v", err)
	}
	if _, err := e.DeleteTask("2025-01-04", -1); err != nil {
		t.Fatalf("delete out of range: %v", err)
	}
	if got := e.GetDay("2025-01-04"); len(got.Tasks) != 1 {
		t.Fatalf("expected 1 task intact, got %d", len(got.Tasks))
	}
}

func TestDeleteLastTaskRemovesDayRecord(t *testing.T) {
	store := newMemStore()
	e := NewEngine(store)
	if _, err := e.AddTask("2025-01-04", "Only task", "", false); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, _, err := e.ToggleTask("2025-01-04", 0, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if _, err := e.DeleteTask("2025-01-04", 0); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var log TaskLog
	raw, ok, _ := store.Get(KeyTaskLog)
	if !ok {
		t.Fatal("expected task log persisted")
	}
	if err := json.Unmarshal(raw, &log); err != nil {
		t.Fatalf("decode persisted log: %v", err)
	}
	if _, exists := log["2025-01-04"]; exists {
		t.Fatal("expected emptied day removed from persisted log")
	}

	// Re-adding starts a fresh record with a zero count.
	day, err := e.AddTask("2025-01-04", "Fresh start", "", false)
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if day.Completed != 0 || len(day.Tasks) != 1 {
		t.Fatalf("expected fresh record, got %+v", day)
	}
}

func TestAwardXPCascadesLevels(t *testing.T) {
	e := NewEngine(newMemStore())

	events := e.AwardXP(250)
	state := e.State()
	if state.Level != 2 || state.XP != 50 {
		t.Fatalf("expected level 2 with 50 XP, got level %d xp %d", state.Level, state.XP)
	}
	if state.TotalXP != 250 {
		t.Fatalf("expected total 250, got %d", state.TotalXP)
	}
	if len(events) != 1 {
		t.Fatalf("expected one level-up event, got %d", len(events))
	}

	// 300 + 400 thresholds both crossed by one award.
	events = e.AwardXP(700)
	state = e.State()
	if state.Level != 4 || state.XP != 50 {
		t.Fatalf("expected level 4 with 50 XP, got level %d xp %d", state.Level, state.XP)
	}
	if len(events) != 2 {
		t.Fatalf("expected two level-up events, got %d", len(events))
	}
}

func TestAwardXPIgnoresNonPositive(t *testing.T) {
	e := NewEngine(newMemStore())
	if events := e.AwardXP(0); events != nil {
		t.Fatalf("expected no events for zero award, got %v", events)
	}
	if events := e.AwardXP(-5); events != nil {
		t.Fatalf("expected no events for negative award, got %v", events)
	}
	if state := e.State(); state.TotalXP != 0 || state.XP != 0 {
		t.Fatalf("expected untouched state, got %+v", state)
	}
}

func completeTask(t *testing.T, e *Engine, date, text string) {
	t.Helper()
	day, err := e.AddTask(date, text, "", false)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, _, err := e.ToggleTask(date, len(day.Tasks)-1, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
}

func TestStreakSequenceWithGap(t *testing.T) {
	e := NewEngine(newMemStore())

	completeTask(t, e, "2025-01-04", "Day one")
	state, err := e.UpdateStreak("2025-01-04")
	if err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if state.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", state.Streak)
	}

	completeTask(t, e, "2025-01-05", "Day two")
	state, err = e.UpdateStreak("2025-01-05")
	if err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if state.Streak != 2 {
		t.Fatalf("expected streak 2, got %d", state.Streak)
	}

	// Skip 2025-01-06 entirely; the catch-up day resets to 1.
	completeTask(t, e, "2025-01-07", "Back again")
	state, err = e.UpdateStreak("2025-01-07")
	if err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if state.Streak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", state.Streak)
	}
}

func TestStreakIdempotentWithinDay(t *testing.T) {
	e := NewEngine(newMemStore())
	completeTask(t, e, "2025-01-04", "Task")
	if _, err := e.UpdateStreak("2025-01-04"); err != nil {
		t.Fatalf("update streak: %v", err)
	}
	state, err := e.UpdateStreak("2025-01-04")
	if err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if state.Streak != 1 {
		t.Fatalf("expected streak unchanged at 1, got %d", state.Streak)
	}
}

func TestStreakUnproductiveDayZeroes(t *testing.T) {
	e := NewEngine(newMemStore())
	completeTask(t, e, "2025-01-04", "Task")
	if _, err := e.UpdateStreak("2025-01-04"); err != nil {
		t.Fatalf("update streak: %v", err)
	}

	state, err := e.UpdateStreak("2025-01-05")
	if err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if state.Streak != 0 {
		t.Fatalf("expected streak 0 on unproductive day, got %d", state.Streak)
	}
	// LastActiveDate must not advance on the unproductive day.
	if state.LastActiveDate != "2025-01-04" {
		t.Fatalf("expected last active date held at 2025-01-04, got %q", state.LastActiveDate)
	}
}

func TestStreakFirstEverDay(t *testing.T) {
	e := NewEngine(newMemStore())

	state, err := e.UpdateStreak("2025-01-04")
	if err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if state.Streak != 0 || state.LastActiveDate != "" {
		t.Fatalf("expected untouched state without completions, got %+v", state)
	}

	completeTask(t, e, "2025-01-04", "First ever")
	state, err = e.UpdateStreak("2025-01-04")
	if err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if state.Streak != 1 || state.LastActiveDate != "2025-01-04" {
		t.Fatalf("expected streak 1 anchored to today, got %+v", state)
	}
}

func TestReloadDropsSnapshot(t *testing.T) {
	store := newMemStore()
	e := NewEngine(store)
	completeTask(t, e, "2025-01-04", "Mine")

	// Another instance overwrites the store wholesale.
	other := NewEngine(store)
	if _, err := other.AddTask("2025-01-05", "Theirs", "", false); err != nil {
		t.Fatalf("other add: %v", err)
	}

	e.Reload()
	if got := e.GetDay("2025-01-05"); len(got.Tasks) != 1 {
		t.Fatalf("expected reloaded day from other instance, got %+v", got)
	}
}

func TestLoadMalformedBlobsFallBackToDefaults(t *testing.T) {
	store := newMemStore()
	store.data[KeyTaskLog] = []byte("{not json")
	store.data[KeyGamification] = []byte("also not json")

	e := NewEngine(store)
	if got := e.GetDay("2025-01-04"); len(got.Tasks) != 0 {
		t.Fatalf("expected empty log, got %+v", got)
	}
	state := e.State()
	if state.Level != 1 || state.XP != 0 || state.Streak != 0 {
		t.Fatalf("expected default state, got %+v", state)
	}
	if state.Badges == nil || state.CompletedChallenges == nil {
		t.Fatal("expected non-nil default collections")
	}
}

func TestLoadRecountsCompletedOnRead(t *testing.T) {
	store := newMemStore()
	// A stale count in the blob must be corrected by recount.
	store.data[KeyTaskLog] = []byte(`{"2025-01-04":{"tasks":[{"text":"A","done":true},{"text":"B","done":false}],"completed":99}}`)

	e := NewEngine(store)
	if got := e.GetDay("2025-01-04").Completed; got != 1 {
		t.Fatalf("expected recounted completed 1, got %d", got)
	}
}

func TestNilStoreEngineStaysInMemory(t *testing.T) {
	e := NewEngine(nil)
	if _, err := e.AddTask("2025-01-04", "No store", "", false); err != nil {
		t.Fatalf("add without store: %v", err)
	}
	if got := e.GetDay("2025-01-04"); len(got.Tasks) != 1 {
		t.Fatalf("expected in-memory task, got %+v", got)
	}
}
