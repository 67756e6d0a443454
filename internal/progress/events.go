package progress

import "fmt"

// Event is something worth announcing to the user. State transitions
// return events instead of dispatching notifications themselves, so
// the engine stays testable without a notifier present.
type Event interface {
	Message() string
}

type LevelUpEvent struct {
	Level int
}

func (e LevelUpEvent) Message() string {
	return fmt.Sprintf("Level Up! You are now Level %d!", e.Level)
}

type ChallengeCompletedEvent struct {
	ID   string
	Name string
	XP   int
}

func (e ChallengeCompletedEvent) Message() string {
	return fmt.Sprintf("Challenge Complete: %s (+%d XP)", e.Name, e.XP)
}

type BadgeUnlockedEvent struct {
	ID   string
	Name string
}

func (e BadgeUnlockedEvent) Message() string {
	return fmt.Sprintf("Badge Unlocked: %s", e.Name)
}

type ReminderEvent struct {
	Date string
	Time string
	Text string
}

func (e ReminderEvent) Message() string {
	return fmt.Sprintf("Reminder: %s", e.Text)
}
