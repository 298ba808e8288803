package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathquest/ent"
	"github.com/abhisek/mathquest/internal/grades"
)

// ProfileData mirrors the singleton player row.
type ProfileData struct {
	Grade        grades.Grade
	Level        int
	Experience   int
	TotalScore   int
	StreakDays   int
	LastPlayedAt *time.Time
}

// Profile loads the player profile, creating the default one (first
// grade, level 1) on first run.
func (s *Store) Profile(ctx context.Context) (ProfileData, error) {
	p, err := s.client.Profile.Query().First(ctx)
	if ent.IsNotFound(err) {
		p, err = s.client.Profile.Create().
			SetGrade(string(grades.K1)).
			SetLevel(1).
			Save(ctx)
	}
	if err != nil {
		return ProfileData{}, fmt.Errorf("load profile: %w", err)
	}
	return ProfileData{
		Grade:        grades.Grade(p.Grade),
		Level:        p.Level,
		Experience:   p.Experience,
		TotalScore:   p.TotalScore,
		StreakDays:   p.StreakDays,
		LastPlayedAt: p.LastPlayedAt,
	}, nil
}

// SetGradeLevel moves the profile to an explicit grade and level. Used by
// the grade picker, not by session results.
func (s *Store) SetGradeLevel(ctx context.Context, g grades.Grade, level int) error {
	if !grades.Valid(g) {
		return fmt.Errorf("unknown grade %q", g)
	}
	if level < 1 || level > 100 {
		return fmt.Errorf("level %d out of range", level)
	}
	p, err := s.client.Profile.Query().First(ctx)
	if ent.IsNotFound(err) {
		_, err = s.client.Profile.Create().
			SetGrade(string(g)).
			SetLevel(level).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	_, err = p.Update().
		SetGrade(string(g)).
		SetLevel(level).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
