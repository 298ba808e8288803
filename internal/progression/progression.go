// Package progression decides how a finished session moves the player
// through the 100-level ladder and how its score feeds the ledger.
// Everything here is a pure function of the inputs.
package progression

// Direction is the level adjustment after a session.
type Direction string

const (
	Increase Direction = "increase"
	Maintain Direction = "maintain"
	Decrease Direction = "decrease"
)

// LevelChange maps a session percentage to a direction. Below 50 the
// level drops, above 84 it rises, everything in between holds.
func LevelChange(pct int) Direction {
	switch {
	case pct < 50:
		return Decrease
	case pct > 84:
		return Increase
	default:
		return Maintain
	}
}

// Result is the evaluated outcome for one session.
type Result struct {
	Direction Direction
	NewLevel  int
}

// Evaluate applies LevelChange to the current level, clamping the new
// level to [1, 100]. Level 1 cannot decrease and level 100 cannot
// increase; the direction still reports what the score earned.
func Evaluate(pct, level int) Result {
	dir := LevelChange(pct)
	next := level
	switch dir {
	case Increase:
		next++
	case Decrease:
		next--
	}
	if next < 1 {
		next = 1
	}
	if next > 100 {
		next = 100
	}
	return Result{Direction: dir, NewLevel: next}
}

// LedgerDelta describes how a session score changes the ledger for one
// (grade, level) slot.
type LedgerDelta struct {
	// ScoreDiff is the amount added to the lifetime total: only the
	// improvement over the prior high counts, never negative.
	ScoreDiff int
	// IsNewHighScore reports a strict improvement.
	IsNewHighScore bool
	// OldHighScore is the high score before this session.
	OldHighScore int
}

// ScoreDiff computes the ledger delta for a session score against the
// prior high score for the same level.
func ScoreDiff(priorHigh, session int) LedgerDelta {
	d := LedgerDelta{OldHighScore: priorHigh}
	if session > priorHigh {
		d.ScoreDiff = session - priorHigh
		d.IsNewHighScore = true
	}
	return d
}
