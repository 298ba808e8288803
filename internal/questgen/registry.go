package questgen

import (
	"go.uber.org/zap"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// Registry maps every grade to its generator strategy and is the single
// entry point sessions use to request questions. The registry and all
// strategies are read-only after construction and safe for concurrent use.
type Registry struct {
	strategies map[grades.Grade]Strategy
	fallback   *gradeStrategy
	log        *zap.Logger
}

// NewRegistry builds the registry with all 15 grade strategies plus the
// generic fallback used when grade or band lookup fails.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		strategies: map[grades.Grade]Strategy{
			grades.K1: newK1(log),
			grades.K2: newK2(log),
			grades.K3: newK3(log),
			grades.P1: newP1(log),
			grades.P2: newP2(log),
			grades.P3: newP3(log),
			grades.P4: newP4(log),
			grades.P5: newP5(log),
			grades.P6: newP6(log),
			grades.M1: newM1(log),
			grades.M2: newM2(log),
			grades.M3: newM3(log),
			grades.M4: newM4(log),
			grades.M5: newM5(log),
			grades.M6: newM6(log),
		},
		fallback: newFallback(log),
		log:      log,
	}
	return r
}

// Strategy returns the generator for a grade.
func (r *Registry) Strategy(g grades.Grade) (Strategy, bool) {
	s, ok := r.strategies[g]
	return s, ok
}

// Generate produces a question for (grade, level). Unknown grades and
// uncovered levels resolve to the fallback generator; generation never
// fails from the caller's perspective.
func (r *Registry) Generate(src numgen.Source, g grades.Grade, level int) Question {
	if level < 1 {
		level = 1
	}
	if level > 100 {
		level = 100
	}
	band := levelband.Config(g, level)
	strat, ok := r.strategies[g]
	if !ok || band == nil {
		r.log.Warn("no config for grade/level, using fallback generator",
			zap.String("grade", string(g)), zap.Int("level", level))
		return r.fallback.Generate(src, level, nil)
	}
	return strat.Generate(src, level, band)
}

// WordProblem produces a template word problem for (grade, level), with
// the same fallback behavior as Generate.
func (r *Registry) WordProblem(src numgen.Source, g grades.Grade, level int) Question {
	band := levelband.Config(g, level)
	strat, ok := r.strategies[g]
	if !ok || band == nil {
		return r.fallback.Generate(src, level, nil)
	}
	return strat.WordProblem(src, level, band)
}

// newFallback is the generic generator behind ConfigNotFound: plain
// addition and subtraction that scales gently with level and covers every
// level so it can stand in for any grade.
func newFallback(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.Grade("fallback"), log,
		[]subRange{
			{1, 30, []shape{shapeAddWithin(10), shapeSubWithin(10)}},
			{31, 60, []shape{shapeAddWithin(20), shapeSubWithin(20)}},
			{61, 100, []shape{shapeAddRange(10, 50), shapeSubRange(10, 50)}},
		},
	)
}
