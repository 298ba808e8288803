package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/numgen"
	"github.com/abhisek/mathquest/internal/progression"
)

type fakePersister struct {
	mu      sync.Mutex
	entry   LedgerEntry
	failN   int
	applied []Result
}

func (f *fakePersister) LedgerFor(_ context.Context, _ grades.Grade, _ int) (LedgerEntry, error) {
	return f.entry, nil
}

func (f *fakePersister) Apply(_ context.Context, r Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failN > 0 {
		f.failN--
		return errors.New("disk full")
	}
	f.applied = append(f.applied, r)
	return nil
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Grade == "" {
		cfg.Grade = grades.P2
	}
	if cfg.Level == 0 {
		cfg.Level = 45
	}
	if cfg.Source == nil {
		cfg.Source = numgen.New(11)
	}
	return New(cfg)
}

// playThrough answers every question correctly and returns the session.
func playThrough(t *testing.T, s *Session) {
	t.Helper()
	q := s.Start()
	for {
		res, err := s.Submit(q.Answer)
		require.NoError(t, err)
		require.False(t, res.Ignored)
		require.True(t, res.Correct)
		if res.Done {
			return
		}
		require.NotNil(t, res.Next)
		q = *res.Next
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestSession(t, Config{})
	assert.Equal(t, PhaseReady, s.Phase())
	assert.Equal(t, 10, s.Total())

	q := s.Start()
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.NotEmpty(t, q.Prompt)

	res, err := s.Submit(q.Answer)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 1, res.Answered)
	assert.False(t, res.Done)
	assert.NotNil(t, res.Next)
	assert.Equal(t, 1, s.Score())
}

func TestSubmitOutsidePlaying(t *testing.T) {
	s := newTestSession(t, Config{})
	_, err := s.Submit(3)
	assert.ErrorIs(t, err, ErrNotPlaying)
}

func TestWrongAnswerCounted(t *testing.T) {
	s := newTestSession(t, Config{})
	q := s.Start()
	res, err := s.Submit(q.Answer + 1)
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, q.Answer, res.Answer)
	assert.Zero(t, s.Score())

	recs := s.Answers()
	require.Len(t, recs, 1)
	assert.False(t, recs[0].IsCorrect)
	assert.Equal(t, q.Answer+1, recs[0].UserAnswer)
}

func TestFinalizePerfectRun(t *testing.T) {
	s := newTestSession(t, Config{Boost: 2})
	playThrough(t, s)
	assert.Equal(t, PhaseFinalizing, s.Phase())

	p := &fakePersister{entry: LedgerEntry{HighScore: 6, StreakDays: 2, FirstToday: true}}
	r, err := s.Finalize(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 10, r.Score)
	assert.Equal(t, 100, r.Percentage)
	assert.Equal(t, progression.Increase, r.Progress.Direction)
	assert.Equal(t, 46, r.Progress.NewLevel)
	assert.True(t, r.AppliesProgression)
	assert.Equal(t, 4, r.Ledger.ScoreDiff)
	assert.True(t, r.Ledger.IsNewHighScore)
	assert.Positive(t, r.Reward.Total)
	assert.Equal(t, float64(2), r.Boost)
	assert.Len(t, r.Answers, 10)

	require.Len(t, p.applied, 1)
	assert.Equal(t, PhaseReady, s.Phase())
}

func TestFinalizeBeforeDone(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()
	_, err := s.Finalize(context.Background(), &fakePersister{})
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestFinalizeRetriesAfterPersistenceFailure(t *testing.T) {
	s := newTestSession(t, Config{})
	playThrough(t, s)

	p := &fakePersister{failN: 1}
	_, err := s.Finalize(context.Background(), p)
	require.Error(t, err)
	assert.Equal(t, PhaseFinalizing, s.Phase())
	assert.Empty(t, p.applied)

	r, err := s.Finalize(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Score)
	require.Len(t, p.applied, 1)
	assert.Equal(t, PhaseReady, s.Phase())
}

func TestReplayDoesNotApplyProgression(t *testing.T) {
	s := newTestSession(t, Config{Level: 45, EffectiveLevel: 12})
	playThrough(t, s)

	p := &fakePersister{}
	r, err := s.Finalize(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, r.AppliesProgression)
	assert.Equal(t, 12, r.EffectiveLevel)
	assert.Equal(t, 13, r.Progress.NewLevel)
}

func TestExitDiscardsRun(t *testing.T) {
	s := newTestSession(t, Config{})
	q := s.Start()
	_, err := s.Submit(q.Answer)
	require.NoError(t, err)

	s.Exit()
	assert.Equal(t, PhaseReady, s.Phase())
	assert.Empty(t, s.Answers())
	assert.Zero(t, s.Score())
}

func TestConcurrentSubmitSingleFlight(t *testing.T) {
	s := newTestSession(t, Config{TransitionDelay: 50 * time.Millisecond})
	q := s.Start()

	var wg sync.WaitGroup
	results := make([]SubmitResult, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.Submit(q.Answer)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	ignored := 0
	for _, res := range results {
		if res.Ignored {
			ignored++
		}
	}
	assert.Equal(t, 1, ignored, "exactly one submission must win")
	assert.Len(t, s.Answers(), 1)
}

func TestExitDuringSubmitDiscards(t *testing.T) {
	s := newTestSession(t, Config{TransitionDelay: 50 * time.Millisecond})
	q := s.Start()

	done := make(chan SubmitResult, 1)
	go func() {
		res, _ := s.Submit(q.Answer)
		done <- res
	}()
	time.Sleep(10 * time.Millisecond)
	s.Exit()

	res := <-done
	assert.True(t, res.Ignored)
	assert.Equal(t, PhaseReady, s.Phase())
	assert.Empty(t, s.Answers())
}

func TestStartResetsPreviousRun(t *testing.T) {
	s := newTestSession(t, Config{})
	playThrough(t, s)
	require.Equal(t, PhaseFinalizing, s.Phase())

	s.Start()
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Empty(t, s.Answers())
}
