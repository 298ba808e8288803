package questgen

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// Strategy is the capability every grade generator implements.
type Strategy interface {
	// Generate produces a question for the given level and band.
	// It never panics and never returns a malformed question; internal
	// arithmetic failures resolve to a safe fallback.
	Generate(src numgen.Source, level int, band *levelband.Band) Question

	// WordProblem produces a template word problem for the level.
	// Falls back to Generate when the grade has no word templates.
	WordProblem(src numgen.Source, level int, band *levelband.Band) Question

	// Categories lists the question categories available at a level.
	Categories(level int) []levelband.QuestionCategory

	// SupportsLevel reports whether the strategy covers the level.
	SupportsLevel(level int) bool
}

// shape is one concrete question-generation algorithm. A shape samples
// operands, computes the exact integer answer, and formats the prompt.
// Shapes that use float math return an error when the result fails the
// finiteness/integrality guard; the caller substitutes a safe fallback.
type shape func(src numgen.Source, level int, band *levelband.Band) (draft, error)

// subRange is a contiguous run of levels sharing a set of shapes.
// Within a sub-range one shape is chosen uniformly at random per question.
type subRange struct {
	min, max int
	shapes   []shape
}

// gradeStrategy is the shared strategy engine. The 15 grades differ only
// in their sub-range tables, shape functions, and word templates.
type gradeStrategy struct {
	grade grades.Grade
	subs  []subRange
	words []shape
	log   *zap.Logger
}

func newGradeStrategy(g grades.Grade, log *zap.Logger, subs []subRange, words ...shape) *gradeStrategy {
	if log == nil {
		log = zap.NewNop()
	}
	return &gradeStrategy{grade: g, subs: subs, words: words, log: log}
}

func (s *gradeStrategy) SupportsLevel(level int) bool {
	return s.rangeFor(level) != nil
}

func (s *gradeStrategy) rangeFor(level int) *subRange {
	for i := range s.subs {
		if level >= s.subs[i].min && level <= s.subs[i].max {
			return &s.subs[i]
		}
	}
	return nil
}

func (s *gradeStrategy) Categories(level int) []levelband.QuestionCategory {
	if b := levelband.Config(s.grade, level); b != nil {
		return b.Categories
	}
	return []levelband.QuestionCategory{levelband.CatAddition}
}

func (s *gradeStrategy) Generate(src numgen.Source, level int, band *levelband.Band) Question {
	sub := s.rangeFor(level)
	if sub == nil || len(sub.shapes) == 0 {
		s.log.Warn("no sub-range for level, using fallback question",
			zap.String("grade", string(s.grade)), zap.Int("level", level))
		return s.safeQuestion(src, level)
	}
	sh := sub.shapes[src.IntN(len(sub.shapes))]
	return s.run(sh, src, level, band)
}

func (s *gradeStrategy) WordProblem(src numgen.Source, level int, band *levelband.Band) Question {
	if len(s.words) == 0 {
		return s.Generate(src, level, band)
	}
	sh := s.words[src.IntN(len(s.words))]
	return s.run(sh, src, level, band)
}

// run executes one shape with the full failure mask: a shape error or an
// out-of-guard answer resolves to the hardcoded safe question, logged as a
// warning and invisible to the player.
func (s *gradeStrategy) run(sh shape, src numgen.Source, level int, band *levelband.Band) Question {
	d, err := sh(src, level, band)
	if err != nil {
		s.log.Warn("question shape failed, using fallback question",
			zap.String("grade", string(s.grade)), zap.Int("level", level), zap.Error(err))
		return s.safeQuestion(src, level)
	}
	return s.finish(src, level, d)
}

// finish attaches identity and distractor choices to a draft.
func (s *gradeStrategy) finish(src numgen.Source, level int, d draft) Question {
	spread := d.spread
	if spread <= 0 {
		spread = choiceSpread(d.answer)
	}
	return Question{
		ID:       newQuestionID(),
		Prompt:   d.prompt,
		Answer:   d.answer,
		Choices:  numgen.SeededChoices(src, d.answer, d.seeds, ChoiceCount, spread),
		Category: d.cat,
		Level:    level,
	}
}

// safeQuestion is the hardcoded fallback: small-number addition that can
// never fail. Operands scale mildly with level so the substitution is not
// jarring mid-session.
func (s *gradeStrategy) safeQuestion(src numgen.Source, level int) Question {
	hi := 5 + level/10
	a := numgen.Between(src, 1, hi)
	b := numgen.Between(src, 1, hi)
	d := draft{
		prompt: fmt.Sprintf("What is %d + %d?", a, b),
		answer: a + b,
		cat:    levelband.CatAddition,
	}
	return s.finish(src, level, d)
}
