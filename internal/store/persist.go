package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/mathquest/ent"
	"github.com/abhisek/mathquest/ent/levelscore"
	"github.com/abhisek/mathquest/internal/game"
	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/progression"
)

// LedgerFor returns the stored state a session needs before it can score
// itself: the prior high for the level plus the streak bookkeeping the
// reward calculator uses. StreakDays is the streak a session finishing
// now would count with.
func (s *Store) LedgerFor(ctx context.Context, g grades.Grade, level int) (game.LedgerEntry, error) {
	var entry game.LedgerEntry

	ls, err := s.client.LevelScore.Query().
		Where(levelscore.Grade(string(g)), levelscore.Level(level)).
		Only(ctx)
	switch {
	case err == nil:
		entry.HighScore = ls.HighScore
		entry.PlayCount = ls.PlayCount
	case !ent.IsNotFound(err):
		return game.LedgerEntry{}, fmt.Errorf("query level score: %w", err)
	}

	p, err := s.Profile(ctx)
	if err != nil {
		return game.LedgerEntry{}, err
	}
	now := time.Now()
	entry.FirstToday = p.LastPlayedAt == nil || !sameDay(*p.LastPlayedAt, now)
	entry.StreakDays = nextStreak(p.LastPlayedAt, p.StreakDays, now)
	return entry, nil
}

// Apply commits a finished session in one transaction: ledger upsert,
// profile totals, streak, optional level/grade move, and the two audit
// events. An error leaves the database untouched so the caller can retry.
//
// Both audit sequence numbers are reserved before the transaction opens.
// The counter runs raw SQL on the underlying connection, and SQLite
// allows a single writer: an in-transaction counter update would block
// against the transaction's own lock. A rollback leaves a gap in the
// sequence, which the ordering contract tolerates.
func (s *Store) Apply(ctx context.Context, r game.Result) error {
	sessionSeq, err := s.seq.Next(ctx)
	if err != nil {
		return err
	}
	expSeq, err := s.seq.Next(ctx)
	if err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := s.apply(ctx, tx, r, sessionSeq, expSeq); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session %s: %w", r.SessionID, err)
	}
	return nil
}

func (s *Store) apply(ctx context.Context, tx *ent.Tx, r game.Result, sessionSeq, expSeq int64) error {
	now := time.Now()
	awarded := int(math.Round(float64(r.Reward.Total) * r.Boost))

	// Score ledger for the played level.
	ls, err := tx.LevelScore.Query().
		Where(levelscore.Grade(string(r.Grade)), levelscore.Level(r.EffectiveLevel)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.LevelScore.Create().
			SetGrade(string(r.Grade)).
			SetLevel(r.EffectiveLevel).
			SetHighScore(r.Score).
			SetPlayCount(1).
			SetLastPlayedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create level score: %w", err)
		}
	case err != nil:
		return fmt.Errorf("query level score: %w", err)
	default:
		high := ls.HighScore
		if r.Score > high {
			high = r.Score
		}
		_, err = ls.Update().
			SetHighScore(high).
			SetPlayCount(ls.PlayCount + 1).
			SetLastPlayedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update level score: %w", err)
		}
	}

	// Profile totals and position.
	p, err := tx.Profile.Query().First(ctx)
	if ent.IsNotFound(err) {
		p, err = tx.Profile.Create().
			SetGrade(string(r.Grade)).
			SetLevel(r.Level).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	up := p.Update().
		SetExperience(p.Experience + awarded).
		SetTotalScore(p.TotalScore + r.Ledger.ScoreDiff).
		SetStreakDays(nextStreak(p.LastPlayedAt, p.StreakDays, now)).
		SetLastPlayedAt(now)

	if r.AppliesProgression {
		g, level := advance(r)
		up = up.SetGrade(string(g)).SetLevel(level)
	}
	if _, err := up.Save(ctx); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	// Audit events share the global sequence, reserved by the caller.
	_, err = tx.SessionEvent.Create().
		SetSequence(sessionSeq).
		SetSessionID(r.SessionID).
		SetGrade(string(r.Grade)).
		SetLevel(r.EffectiveLevel).
		SetScore(r.Score).
		SetTotalQuestions(r.Total).
		SetPercentage(r.Percentage).
		SetDirection(string(r.Progress.Direction)).
		SetAppliedProgression(r.AppliesProgression).
		SetDurationSecs(durationSecs(r)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}

	_, err = tx.ExpEvent.Create().
		SetSequence(expSeq).
		SetSessionID(r.SessionID).
		SetBase(r.Reward.Base).
		SetCompletionBonus(r.Reward.CompletionBonus).
		SetFirstDailyBonus(r.Reward.FirstDailyBonus).
		SetStreakBonus(r.Reward.StreakBonus).
		SetRepeatPenalty(r.Reward.RepeatPenaltyApplied).
		SetBoost(r.Boost).
		SetAwarded(awarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exp event: %w", err)
	}
	return nil
}

// advance resolves the profile's next (grade, level) from an applied
// result. Reaching level 100 with an increase moves to the next grade's
// level 1; the last grade tops out at 100.
func advance(r game.Result) (grades.Grade, int) {
	if r.Progress.Direction == progression.Increase && r.EffectiveLevel == 100 {
		if next, ok := grades.Next(r.Grade); ok {
			return next, 1
		}
		return r.Grade, 100
	}
	return r.Grade, r.Progress.NewLevel
}

func durationSecs(r game.Result) int {
	var total time.Duration
	for _, a := range r.Answers {
		total += a.TimeSpent
	}
	return int(total.Seconds())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// nextStreak is the streak value after playing at now, given the stored
// streak and the previous play time.
func nextStreak(last *time.Time, streak int, now time.Time) int {
	if last == nil {
		return 1
	}
	if sameDay(*last, now) {
		if streak < 1 {
			return 1
		}
		return streak
	}
	if sameDay(last.AddDate(0, 0, 1), now) {
		return streak + 1
	}
	return 1
}
