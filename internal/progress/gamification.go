package progress

// ChallengeProgress tracks an accumulating challenge across days.
// LastCounted is the most recent date that contributed to Progress;
// it guards against counting the same calendar day twice.
type ChallengeProgress struct {
	ID          string `json:"id"`
	Progress    int    `json:"progress"`
	Goal        int    `json:"goal"`
	LastCounted string `json:"lastCounted,omitempty"`
}

// Gamification is the persisted engagement state. Badges and
// CompletedChallenges only ever grow. XP is the amount inside the
// current level; TotalXP is lifetime and monotonic.
type Gamification struct {
	Level               int                 `json:"level"`
	XP                  int                 `json:"xp"`
	TotalXP             int                 `json:"totalXP"`
	Streak              int                 `json:"streak"`
	LastActiveDate      string              `json:"lastActiveDate,omitempty"`
	Badges              []string            `json:"badges"`
	ActiveChallenges    []ChallengeProgress `json:"activeChallenges"`
	CompletedChallenges []string            `json:"completedChallenges"`
}

func defaultGamification() Gamification {
	return Gamification{
		Level:               1,
		Badges:              []string{},
		ActiveChallenges:    []ChallengeProgress{},
		CompletedChallenges: []string{},
	}
}

func (g Gamification) hasBadge(id string) bool {
	return containsString(g.Badges, id)
}

func (g Gamification) challengeCompleted(id string) bool {
	return containsString(g.CompletedChallenges, id)
}

// RequiredXPForNextLevel is the XP needed inside the given level
// before the next level-up.
func RequiredXPForNextLevel(level int) int {
	return (level + 1) * 100
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
