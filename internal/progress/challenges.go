package progress

type ChallengeKind string

const (
	// ChallengeDailyCount compares a single day's completed count
	// against the goal.
	ChallengeDailyCount ChallengeKind = "daily_count"
	// ChallengeEarlyBird accumulates distinct days with a completion
	// before the cutoff time.
	ChallengeEarlyBird ChallengeKind = "early_bird"
	// ChallengeStreak awards when the streak equals the goal exactly.
	ChallengeStreak ChallengeKind = "streak"
	// ChallengePerfectWeek is defined for display but has no
	// evaluation rule.
	ChallengePerfectWeek ChallengeKind = "perfect_week"
)

type ChallengeDefinition struct {
	ID          string
	Kind        ChallengeKind
	Name        string
	Description string
	Goal        int
	XP          int
	BadgeID     string
}

const earlyBirdCutoff = "09:00"

// Catalog is the fixed challenge set. It is not user-mutable.
var Catalog = []ChallengeDefinition{
	{
		ID:          "complete5",
		Kind:        ChallengeDailyCount,
		Name:        "Task Novice",
		Description: "Complete 5 tasks in one day",
		Goal:        5,
		XP:          80,
		BadgeID:     "novice",
	},
	{
		ID:          "complete10",
		Kind:        ChallengeDailyCount,
		Name:        "Task Master",
		Description: "Complete 10 tasks in one day",
		Goal:        10,
		XP:          150,
		BadgeID:     "master",
	},
	{
		ID:          "early5",
		Kind:        ChallengeEarlyBird,
		Name:        "Early Bird ×5",
		Description: "Complete a task before 09:00 five different days",
		Goal:        5,
		XP:          120,
		BadgeID:     "early",
	},
	{
		ID:          "streak7",
		Kind:        ChallengeStreak,
		Name:        "Week on Fire",
		Description: "Maintain a 7-day streak",
		Goal:        7,
		XP:          250,
		BadgeID:     "fire7",
	},
	{
		ID:          "perfectWeek",
		Kind:        ChallengePerfectWeek,
		Name:        "Perfect Week",
		Description: "Complete 5+ tasks every day for 7 consecutive days",
		XP:          400,
		BadgeID:     "perfect",
	},
}

// BadgeNames maps badge identifiers to their display names.
var BadgeNames = map[string]string{
	"novice":  "Task Novice",
	"master":  "Task Master",
	"early":   "Early Bird",
	"fire7":   "7-Day Streak",
	"perfect": "Perfect Week",
}

// CheckChallenges evaluates the catalog against one day's record and
// the current streak. It runs after each task completion. Awards are
// idempotent forever: a challenge in CompletedChallenges never pays
// out again.
func (e *Engine) CheckChallenges(date string) (Gamification, []Event, error) {
	day, ok := e.log[date]
	if !ok {
		return e.State(), nil, nil
	}

	var events []Event
	for _, def := range Catalog {
		switch def.Kind {
		case ChallengeDailyCount:
			if day.Completed >= def.Goal {
				events = append(events, e.awardChallenge(def)...)
			}
		case ChallengeEarlyBird:
			if dayHasEarlyCompletion(*day) {
				entry := e.findOrCreateProgress(def)
				// One increment per calendar day, however many
				// qualifying tasks it has.
				if entry.LastCounted != date {
					entry.Progress++
					entry.LastCounted = date
				}
				if entry.Progress >= def.Goal {
					events = append(events, e.awardChallenge(def)...)
				}
			}
		case ChallengeStreak:
			// Equality on purpose: a streak observed past the goal
			// without landing on it exactly never awards.
			if e.state.Streak == def.Goal {
				events = append(events, e.awardChallenge(def)...)
			}
		}
	}
	return e.State(), events, e.persistState()
}

func dayHasEarlyCompletion(day DayRecord) bool {
	for _, t := range day.Tasks {
		if t.Done && t.Time != "" && t.Time < earlyBirdCutoff {
			return true
		}
	}
	return false
}

func (e *Engine) findOrCreateProgress(def ChallengeDefinition) *ChallengeProgress {
	for i := range e.state.ActiveChallenges {
		if e.state.ActiveChallenges[i].ID == def.ID {
			return &e.state.ActiveChallenges[i]
		}
	}
	e.state.ActiveChallenges = append(e.state.ActiveChallenges, ChallengeProgress{
		ID:   def.ID,
		Goal: def.Goal,
	})
	return &e.state.ActiveChallenges[len(e.state.ActiveChallenges)-1]
}

// awardChallenge records a completion at most once, pays its XP, and
// grants its badge when not already held.
func (e *Engine) awardChallenge(def ChallengeDefinition) []Event {
	if e.state.challengeCompleted(def.ID) {
		return nil
	}
	e.state.CompletedChallenges = append(e.state.CompletedChallenges, def.ID)

	events := e.AwardXP(def.XP)
	if def.BadgeID != "" && !e.state.hasBadge(def.BadgeID) {
		e.state.Badges = append(e.state.Badges, def.BadgeID)
		events = append(events, BadgeUnlockedEvent{ID: def.BadgeID, Name: BadgeNames[def.BadgeID]})
	}
	events = append(events, ChallengeCompletedEvent{ID: def.ID, Name: def.Name, XP: def.XP})
	return events
}
