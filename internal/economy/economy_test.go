package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBase(t *testing.T) {
	tests := []struct {
		name  string
		score int
		level int
		want  int
	}{
		{"level one", 5, 1, 50},
		{"level fifty", 5, 50, 75},
		{"level hundred", 5, 100, 100},
		{"zero score", 0, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(Input{Score: tt.score, TotalQuestions: 10, Level: tt.level})
			assert.Equal(t, tt.want, got.Base)
		})
	}
}

func TestCalculateCompletionBonus(t *testing.T) {
	perfect := Calculate(Input{Score: 10, TotalQuestions: 10, Percentage: 100, Level: 20})
	assert.Equal(t, 60, perfect.CompletionBonus)

	capped := Calculate(Input{Score: 10, TotalQuestions: 10, Percentage: 100, Level: 100})
	assert.Equal(t, 100, capped.CompletionBonus)

	nineOfTen := Calculate(Input{Score: 9, TotalQuestions: 10, Percentage: 90, Level: 20})
	assert.Zero(t, nineOfTen.CompletionBonus)

	empty := Calculate(Input{Score: 0, TotalQuestions: 0, Level: 20})
	assert.Zero(t, empty.CompletionBonus)
}

func TestCalculateDailyAndStreak(t *testing.T) {
	got := Calculate(Input{Score: 5, TotalQuestions: 10, Level: 10, FirstToday: true, StreakDays: 3})
	assert.Equal(t, 50, got.FirstDailyBonus)
	assert.Equal(t, 30, got.StreakBonus)

	longStreak := Calculate(Input{Score: 5, TotalQuestions: 10, Level: 10, StreakDays: 25})
	assert.Equal(t, 100, longStreak.StreakBonus)

	noStreak := Calculate(Input{Score: 5, TotalQuestions: 10, Level: 10})
	assert.Zero(t, noStreak.FirstDailyBonus)
	assert.Zero(t, noStreak.StreakBonus)
}

func TestCalculateRepeatPenalty(t *testing.T) {
	in := Input{
		Score: 10, TotalQuestions: 10, Percentage: 100, Level: 40,
		FirstToday: true, StreakDays: 5, PlayCountForLevel: 4,
	}
	got := Calculate(in)
	assert.True(t, got.RepeatPenaltyApplied)
	assert.Equal(t, 70, got.Base)           // 140 halved
	assert.Equal(t, 35, got.CompletionBonus) // 70 halved
	assert.Equal(t, 50, got.FirstDailyBonus)
	assert.Equal(t, 50, got.StreakBonus)
	assert.Equal(t, 205, got.Total)

	in.PlayCountForLevel = 3
	assert.False(t, Calculate(in).RepeatPenaltyApplied)
}

func TestTotalSumsParts(t *testing.T) {
	got := Calculate(Input{
		Score: 8, TotalQuestions: 10, Level: 30,
		FirstToday: true, StreakDays: 2, PlayCountForLevel: 1,
	})
	assert.Equal(t, got.Base+got.CompletionBonus+got.FirstDailyBonus+got.StreakBonus, got.Total)
}

func TestRepeatPenaltyNeverBeatsFreshPlay(t *testing.T) {
	for score := 0; score <= 10; score++ {
		fresh := Calculate(Input{Score: score, TotalQuestions: 10, Level: 55, PlayCountForLevel: 1})
		repeat := Calculate(Input{Score: score, TotalQuestions: 10, Level: 55, PlayCountForLevel: 9})
		assert.LessOrEqual(t, repeat.Total, fresh.Total, "score=%d", score)
	}
}
