// Package game runs one drill session from the first question to the
// persisted result. A Session is a small state machine: ready until
// started, playing while questions are served, finalizing once every
// answer is in, and back to ready after the result commits.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/economy"
	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/questgen"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseFinalizing
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseFinalizing:
		return "finalizing"
	}
	return "unknown"
}

var (
	// ErrNotPlaying is returned when Submit is called outside the
	// playing phase.
	ErrNotPlaying = errors.New("game: session is not playing")

	// ErrIncomplete is returned when Finalize is called before every
	// expected answer has been collected.
	ErrIncomplete = errors.New("game: session has unanswered questions")
)

// AnswerRecord is one answered question, appended in strict order.
type AnswerRecord struct {
	Question   questgen.Question
	UserAnswer int
	IsCorrect  bool
	TimeSpent  time.Duration
}

// SubmitResult tells the caller what happened to one submission.
type SubmitResult struct {
	// Ignored is set when the submission was dropped because another
	// one was already in flight.
	Ignored bool
	Correct bool
	// Answer is the correct answer for the submitted question.
	Answer int
	// Done is set once the last question has been answered.
	Done bool
	// Next is the next question to show, nil when Done.
	Next *questgen.Question
	// Answered is how many questions have been answered so far.
	Answered int
}

// Result is the finished-session outcome handed to the Persister.
type Result struct {
	SessionID      string
	Grade          grades.Grade
	Level          int
	EffectiveLevel int
	Score          int
	Total          int
	Percentage     int
	Answers        []AnswerRecord
	Ledger         progression.LedgerDelta
	Progress       progression.Result
	// AppliesProgression is set when the played level is the profile's
	// current level; replays of earlier levels never move the ladder.
	AppliesProgression bool
	Reward             economy.Breakdown
	// Boost multiplies Reward.Total at persistence time.
	Boost      float64
	FinishedAt time.Time
}

// LedgerEntry is the stored state Finalize needs about the played level.
type LedgerEntry struct {
	HighScore  int
	PlayCount  int
	StreakDays int
	FirstToday bool
}

// Persister commits a finished session. Implementations must treat Apply
// as all-or-nothing: an error means nothing was recorded.
type Persister interface {
	LedgerFor(ctx context.Context, g grades.Grade, level int) (LedgerEntry, error)
	Apply(ctx context.Context, r Result) error
}

// Config sets up a session.
type Config struct {
	Grade grades.Grade
	// Level is the profile's current level for the grade.
	Level int
	// EffectiveLevel is the level actually played. Defaults to Level.
	EffectiveLevel int
	// Boost is the EXP multiplier recorded on the result. Defaults to 1.
	Boost float64
	// TransitionDelay is how long Submit pauses before serving the next
	// question. Zero means no pause.
	TransitionDelay time.Duration
	Source          numgen.Source
	Registry        *questgen.Registry
}

// Session runs one drill. All methods are safe for concurrent use.
type Session struct {
	id  string
	cfg Config

	mu       sync.Mutex
	phase    Phase
	total    int
	current  *questgen.Question
	shownAt  time.Time
	answers  []AnswerRecord
	inFlight bool
	result   *Result
}

// New builds a session in the ready phase.
func New(cfg Config) *Session {
	if cfg.EffectiveLevel == 0 {
		cfg.EffectiveLevel = cfg.Level
	}
	if cfg.Boost <= 0 {
		cfg.Boost = 1
	}
	if cfg.Source == nil {
		cfg.Source = numgen.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = questgen.NewRegistry(nil)
	}
	return &Session{
		id:    uuid.NewString(),
		cfg:   cfg,
		phase: PhaseReady,
		total: levelband.QuestionCount(cfg.Grade),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Total returns how many questions the session asks.
func (s *Session) Total() int { return s.total }

// Grade returns the grade being played.
func (s *Session) Grade() grades.Grade { return s.cfg.Grade }

// Level returns the level being played.
func (s *Session) Level() int { return s.cfg.EffectiveLevel }

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return score(s.answers)
}

// Answers returns a copy of the answer log.
func (s *Session) Answers() []AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AnswerRecord, len(s.answers))
	copy(out, s.answers)
	return out
}

// Start resets the session and serves the first question. Calling Start
// on a session that already ran discards the previous run.
func (s *Session) Start() questgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhasePlaying
	s.answers = s.answers[:0]
	s.result = nil
	s.inFlight = false
	q := s.cfg.Registry.Generate(s.cfg.Source, s.cfg.Grade, s.cfg.EffectiveLevel)
	s.current = &q
	s.shownAt = time.Now()
	return q
}

// Submit records an answer to the current question. A submission that
// arrives while another is still processing is dropped with Ignored set;
// answers can never be double-counted.
func (s *Session) Submit(answer int) (SubmitResult, error) {
	s.mu.Lock()
	if s.phase != PhasePlaying {
		s.mu.Unlock()
		return SubmitResult{}, ErrNotPlaying
	}
	if s.inFlight || s.current == nil {
		s.mu.Unlock()
		return SubmitResult{Ignored: true}, nil
	}
	s.inFlight = true

	q := *s.current
	rec := AnswerRecord{
		Question:   q,
		UserAnswer: answer,
		IsCorrect:  answer == q.Answer,
		TimeSpent:  time.Since(s.shownAt),
	}
	s.answers = append(s.answers, rec)
	res := SubmitResult{
		Correct:  rec.IsCorrect,
		Answer:   q.Answer,
		Answered: len(s.answers),
	}
	done := len(s.answers) >= s.total
	delay := s.cfg.TransitionDelay
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.phase != PhasePlaying {
		// Exited mid-transition; the run is discarded.
		return SubmitResult{Ignored: true}, nil
	}
	if done {
		s.phase = PhaseFinalizing
		s.current = nil
		res.Done = true
		return res, nil
	}
	next := s.cfg.Registry.Generate(s.cfg.Source, s.cfg.Grade, s.cfg.EffectiveLevel)
	s.current = &next
	s.shownAt = time.Now()
	res.Next = &next
	return res, nil
}

// Exit abandons the run. Nothing is persisted and the answer log is
// discarded; safe to call at any time, including during a submit.
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseReady
	s.current = nil
	s.answers = nil
	s.result = nil
}

// Finalize evaluates the finished run and hands it to the persister.
// On persistence failure the session stays in the finalizing phase with
// its result intact, so Finalize can simply be called again.
func (s *Session) Finalize(ctx context.Context, p Persister) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseFinalizing {
		return Result{}, ErrIncomplete
	}
	if len(s.answers) < s.total {
		return Result{}, ErrIncomplete
	}

	if s.result == nil {
		entry, err := p.LedgerFor(ctx, s.cfg.Grade, s.cfg.EffectiveLevel)
		if err != nil {
			return Result{}, fmt.Errorf("loading ledger: %w", err)
		}
		r := s.evaluate(entry)
		s.result = &r
	}

	if err := p.Apply(ctx, *s.result); err != nil {
		return Result{}, fmt.Errorf("persisting session %s: %w", s.id, err)
	}

	r := *s.result
	s.phase = PhaseReady
	s.current = nil
	s.result = nil
	return r, nil
}

// evaluate runs the ledger, progression and reward rules over the answer
// log. Called with the lock held.
func (s *Session) evaluate(entry LedgerEntry) Result {
	sc := score(s.answers)
	pct := 0
	if s.total > 0 {
		pct = sc * 100 / s.total
	}

	answers := make([]AnswerRecord, len(s.answers))
	copy(answers, s.answers)

	return Result{
		SessionID:      s.id,
		Grade:          s.cfg.Grade,
		Level:          s.cfg.Level,
		EffectiveLevel: s.cfg.EffectiveLevel,
		Score:          sc,
		Total:          s.total,
		Percentage:     pct,
		Answers:        answers,
		Ledger:         progression.ScoreDiff(entry.HighScore, sc),
		Progress:       progression.Evaluate(pct, s.cfg.EffectiveLevel),
		AppliesProgression: s.cfg.EffectiveLevel == s.cfg.Level,
		Reward: economy.Calculate(economy.Input{
			Score:             sc,
			TotalQuestions:    s.total,
			Percentage:        pct,
			Level:             s.cfg.EffectiveLevel,
			StreakDays:        entry.StreakDays,
			FirstToday:        entry.FirstToday,
			PlayCountForLevel: entry.PlayCount + 1,
		}),
		Boost:      s.cfg.Boost,
		FinishedAt: time.Now(),
	}
}

func score(answers []AnswerRecord) int {
	n := 0
	for _, a := range answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}
