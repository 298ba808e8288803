package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathquest/ent"
	"github.com/abhisek/mathquest/ent/levelscore"
	"github.com/abhisek/mathquest/ent/sessionevent"
	"github.com/abhisek/mathquest/internal/grades"
)

// LevelScoreRow is one ledger row for display.
type LevelScoreRow struct {
	Grade        grades.Grade
	Level        int
	HighScore    int
	PlayCount    int
	LastPlayedAt time.Time
}

// LevelScores lists the ledger for one grade, lowest level first.
func (s *Store) LevelScores(ctx context.Context, g grades.Grade) ([]LevelScoreRow, error) {
	rows, err := s.client.LevelScore.Query().
		Where(levelscore.Grade(string(g))).
		Order(ent.Asc(levelscore.FieldLevel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query level scores: %w", err)
	}
	out := make([]LevelScoreRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, LevelScoreRow{
			Grade:        grades.Grade(r.Grade),
			Level:        r.Level,
			HighScore:    r.HighScore,
			PlayCount:    r.PlayCount,
			LastPlayedAt: r.LastPlayedAt,
		})
	}
	return out, nil
}

// SessionRow is one finished session for display.
type SessionRow struct {
	SessionID  string
	Grade      grades.Grade
	Level      int
	Score      int
	Total      int
	Percentage int
	Direction  string
	When       time.Time
}

// RecentSessions lists the newest finished sessions, most recent first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRow, error) {
	q := s.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	evs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]SessionRow, 0, len(evs))
	for _, e := range evs {
		out = append(out, SessionRow{
			SessionID:  e.SessionID,
			Grade:      grades.Grade(e.Grade),
			Level:      e.Level,
			Score:      e.Score,
			Total:      e.TotalQuestions,
			Percentage: e.Percentage,
			Direction:  e.Direction,
			When:       e.Timestamp,
		})
	}
	return out, nil
}
