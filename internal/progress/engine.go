package progress

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// Store keys for the two persisted blobs.
	KeyTaskLog      = "progressData"
	KeyGamification = "gamification"

	xpPerTask = 10
)

// Store is the key-value persistence adapter the engine writes
// through. Absent keys report ok=false with a nil error.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// Engine owns the task log and the gamification state. All mutations
// go through it; persistence happens after every successful mutation.
// Write failures are reported but never roll back the in-memory
// transition.
type Engine struct {
	store Store
	log   TaskLog
	state Gamification
}

// NewEngine loads both blobs from the store. Malformed or absent data
// falls back to empty defaults rather than failing.
func NewEngine(store Store) *Engine {
	e := &Engine{store: store}
	e.Reload()
	return e
}

// Reload discards the in-memory snapshot and re-reads the store. The
// host calls this when another instance has written to the shared
// file; the most recent full write wins.
func (e *Engine) Reload() {
	e.log = loadTaskLog(e.store)
	e.state = loadGamification(e.store)
}

func loadTaskLog(store Store) TaskLog {
	log := TaskLog{}
	if store == nil {
		return log
	}
	raw, ok, err := store.Get(KeyTaskLog)
	if err != nil || !ok {
		return log
	}
	if err := json.Unmarshal(raw, &log); err != nil {
		return TaskLog{}
	}
	for date, day := range log {
		if day == nil {
			delete(log, date)
			continue
		}
		day.Completed = day.recount()
	}
	return log
}

func loadGamification(store Store) Gamification {
	state := defaultGamification()
	if store == nil {
		return state
	}
	raw, ok, err := store.Get(KeyGamification)
	if err != nil || !ok {
		return state
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return defaultGamification()
	}
	if state.Level < 1 {
		state.Level = 1
	}
	if state.Badges == nil {
		state.Badges = []string{}
	}
	if state.ActiveChallenges == nil {
		state.ActiveChallenges = []ChallengeProgress{}
	}
	if state.CompletedChallenges == nil {
		state.CompletedChallenges = []string{}
	}
	return state
}

// State returns a copy of the current gamification state.
func (e *Engine) State() Gamification {
	out := e.state
	out.Badges = append([]string(nil), e.state.Badges...)
	out.ActiveChallenges = append([]ChallengeProgress(nil), e.state.ActiveChallenges...)
	out.CompletedChallenges = append([]string(nil), e.state.CompletedChallenges...)
	return out
}

// GetDay returns the record for a date, or an empty record when the
// date has none.
func (e *Engine) GetDay(date string) DayRecord {
	day, ok := e.log[date]
	if !ok {
		return DayRecord{}
	}
	out := *day
	out.Tasks = append([]Task(nil), day.Tasks...)
	return out
}

// AddTask appends a task to a date, creating the day record on first
// use. Empty or whitespace-only text is a silent no-op. isEvent only
// sticks when a time was given alongside the event kind.
func (e *Engine) AddTask(date, text, clock string, isEvent bool) (DayRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" || !validDate(date) {
		return e.GetDay(date), nil
	}
	day, ok := e.log[date]
	if !ok {
		day = &DayRecord{Tasks: []Task{}}
		e.log[date] = day
	}
	day.Tasks = append(day.Tasks, Task{
		Text:    text,
		Time:    clock,
		IsEvent: isEvent && clock != "",
	})
	day.Completed = day.recount()
	return e.GetDay(date), e.persistLog()
}

// ToggleTask sets a task's done flag. Missing dates and out-of-range
// indexes are no-ops. A false-to-true transition awards XP; the
// returned events carry any level-ups it caused. Challenge evaluation
// is a separate step the caller runs afterwards.
func (e *Engine) ToggleTask(date string, index int, done bool) (DayRecord, []Event, error) {
	day, ok := e.log[date]
	if !ok || index < 0 || index >= len(day.Tasks) {
		return e.GetDay(date), nil, nil
	}
	wasDone := day.Tasks[index].Done
	day.Tasks[index].Done = done
	day.Completed = day.recount()

	var events []Event
	if done && !wasDone {
		events = e.AwardXP(xpPerTask)
	}
	if err := e.persistLog(); err != nil {
		return e.GetDay(date), events, err
	}
	return e.GetDay(date), events, e.persistState()
}

// DeleteTask removes a task by stored index. The day record is
// dropped entirely once its last task is gone.
func (e *Engine) DeleteTask(date string, index int) (DayRecord, error) {
	day, ok := e.log[date]
	if !ok || index < 0 || index >= len(day.Tasks) {
		return e.GetDay(date), nil
	}
	day.Tasks = append(day.Tasks[:index], day.Tasks[index+1:]...)
	if len(day.Tasks) == 0 {
		delete(e.log, date)
	} else {
		day.Completed = day.recount()
	}
	return e.GetDay(date), e.persistLog()
}

// AwardXP adds to both counters and cascades level-ups. The threshold
// is recomputed with the post-increment level each round, so a single
// large award can cross several levels and emits one event per level.
func (e *Engine) AwardXP(amount int) []Event {
	if amount <= 0 {
		return nil
	}
	e.state.TotalXP += amount
	e.state.XP += amount

	var events []Event
	for e.state.XP >= RequiredXPForNextLevel(e.state.Level) {
		e.state.XP -= RequiredXPForNextLevel(e.state.Level)
		e.state.Level++
		events = append(events, LevelUpEvent{Level: e.state.Level})
	}
	return events
}

// UpdateStreak advances the consecutive-active-day count. It is a
// no-op once LastActiveDate has reached today, and LastActiveDate
// only moves forward on a day with at least one completion, so a
// later catch-up day still sees the gap.
func (e *Engine) UpdateStreak(today string) (Gamification, error) {
	if e.state.LastActiveDate == today {
		return e.State(), nil
	}
	completedToday := e.GetDay(today).Completed > 0

	switch {
	case e.state.LastActiveDate != "":
		wasActiveYesterday := e.state.LastActiveDate == dayBefore(today)
		if wasActiveYesterday && completedToday {
			e.state.Streak++
		} else if completedToday {
			e.state.Streak = 1
		} else {
			e.state.Streak = 0
		}
	case completedToday:
		e.state.Streak = 1
	}

	if completedToday {
		e.state.LastActiveDate = today
	}
	return e.State(), e.persistState()
}

func (e *Engine) persistLog() error {
	if e.store == nil {
		return nil
	}
	raw, err := json.Marshal(e.log)
	if err != nil {
		return fmt.Errorf("progress: encode task log: %w", err)
	}
	if err := e.store.Set(KeyTaskLog, raw); err != nil {
		return fmt.Errorf("progress: save task log: %w", err)
	}
	return nil
}

func (e *Engine) persistState() error {
	if e.store == nil {
		return nil
	}
	raw, err := json.Marshal(e.state)
	if err != nil {
		return fmt.Errorf("progress: encode gamification: %w", err)
	}
	if err := e.store.Set(KeyGamification, raw); err != nil {
		return fmt.Errorf("progress: save gamification: %w", err)
	}
	return nil
}
