// Package economy computes session EXP rewards. The calculator is pure;
// persistence and boost multipliers live with the caller.
package economy

// Input carries everything the calculator needs about a finished session.
type Input struct {
	Score             int
	TotalQuestions    int
	Percentage        int
	Level             int
	StreakDays        int
	FirstToday        bool
	PlayCountForLevel int
}

// Breakdown itemizes a session reward. Total is the sum of the parts
// after the repeat penalty; boost multipliers are never applied here.
type Breakdown struct {
	Base                 int
	CompletionBonus      int
	FirstDailyBonus      int
	StreakBonus          int
	RepeatPenaltyApplied bool
	Total                int
}

const (
	firstDailyBonus = 50
	streakBonusStep = 10
	streakBonusCap  = 10
	repeatThreshold = 3
)

// Calculate computes the EXP breakdown for a session.
//
// Base scales with level so a correct answer is worth 10 EXP at level 1
// and 20 at level 100. The completion bonus requires a perfect score.
// Replaying a level more than three times halves base and completion;
// daily and streak bonuses are never reduced.
func Calculate(in Input) Breakdown {
	var b Breakdown

	b.Base = in.Score * (10 + in.Level/10)
	if in.TotalQuestions > 0 && in.Score == in.TotalQuestions {
		b.CompletionBonus = 50 + in.Level/2
		if b.CompletionBonus > 100 {
			b.CompletionBonus = 100
		}
	}
	if in.FirstToday {
		b.FirstDailyBonus = firstDailyBonus
	}
	if in.StreakDays > 0 {
		days := in.StreakDays
		if days > streakBonusCap {
			days = streakBonusCap
		}
		b.StreakBonus = streakBonusStep * days
	}
	if in.PlayCountForLevel > repeatThreshold {
		b.RepeatPenaltyApplied = true
		b.Base /= 2
		b.CompletionBonus /= 2
	}

	b.Total = b.Base + b.CompletionBonus + b.FirstDailyBonus + b.StreakBonus
	return b
}
