package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelChange(t *testing.T) {
	tests := []struct {
		pct  int
		want Direction
	}{
		{0, Decrease},
		{25, Decrease},
		{49, Decrease},
		{50, Maintain},
		{70, Maintain},
		{84, Maintain},
		{85, Increase},
		{100, Increase},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelChange(tt.pct), "pct=%d", tt.pct)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		pct      int
		level    int
		wantDir  Direction
		wantNext int
	}{
		{"increase mid ladder", 90, 45, Increase, 46},
		{"maintain mid ladder", 60, 45, Maintain, 45},
		{"decrease mid ladder", 30, 45, Decrease, 44},
		{"decrease clamps at one", 10, 1, Decrease, 1},
		{"increase clamps at hundred", 100, 100, Increase, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.pct, tt.level)
			assert.Equal(t, tt.wantDir, got.Direction)
			assert.Equal(t, tt.wantNext, got.NewLevel)
		})
	}
}

func TestScoreDiff(t *testing.T) {
	tests := []struct {
		name      string
		prior     int
		session   int
		wantDelta LedgerDelta
	}{
		{"worse run adds nothing", 15, 10, LedgerDelta{ScoreDiff: 0, IsNewHighScore: false, OldHighScore: 15}},
		{"better run adds the improvement", 15, 20, LedgerDelta{ScoreDiff: 5, IsNewHighScore: true, OldHighScore: 15}},
		{"tie is not a new high", 15, 15, LedgerDelta{ScoreDiff: 0, IsNewHighScore: false, OldHighScore: 15}},
		{"first play counts fully", 0, 8, LedgerDelta{ScoreDiff: 8, IsNewHighScore: true, OldHighScore: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDelta, ScoreDiff(tt.prior, tt.session))
		})
	}
}
