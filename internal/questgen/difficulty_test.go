package questgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// complexitySteps marks the sub-range transitions where a grade switches
// to a harder operation whose answers are numerically smaller: quotients
// after products, logarithms after powers, missing terms after plain
// sums. The magnitude test skips these pairs; everywhere else answers
// must keep growing. Keys are the index of the later sub-range.
var complexitySteps = map[grades.Grade]map[int]string{
	grades.K3: {1: "take-away after addition", 4: "missing-number problems after plain arithmetic"},
	grades.P1: {2: "subtraction after addition", 5: "missing-number problems"},
	grades.P2: {1: "borrowing subtraction after carrying addition", 4: "division facts after tables"},
	grades.P3: {2: "division facts after tables"},
	grades.P4: {3: "long division after multiplication"},
	grades.P5: {1: "percentages and fractions after order of operations", 4: "bracketed expressions after four-digit sums"},
	grades.P6: {3: "percentages after squares and cubes"},
	grades.M2: {2: "equation roots after angle sums"},
	grades.M3: {1: "square roots after Pythagoras", 3: "simultaneous solutions after quadratic values"},
	grades.M4: {2: "logarithms after trigonometry"},
	grades.M5: {2: "logarithms after geometric terms", 4: "series sums after factorial counts"},
	grades.M6: {3: "limits after definite integrals"},
}

// meanAbsAnswer samples questions at a level and averages |answer|.
func meanAbsAnswer(t *testing.T, s Strategy, src numgen.Source, g grades.Grade, level, n int) float64 {
	t.Helper()
	band := levelband.Config(g, level)
	require.NotNil(t, band, "grade %s level %d", g, level)
	total := 0.0
	for i := 0; i < n; i++ {
		a := s.Generate(src, level, band).Answer
		if a < 0 {
			a = -a
		}
		total += float64(a)
	}
	return total / float64(n)
}

// Progressive difficulty measured on the questions themselves, not on the
// declared band ranges: within a grade, the mean answer magnitude of a
// sub-range must not fall below the previous sub-range's, except across a
// declared complexity step.
func TestAnswerMagnitudeGrowsWithinGrades(t *testing.T) {
	const (
		samples = 2000
		// Sampling tolerance. A genuine regression, such as quotients
		// following products, lands far below this.
		slack = 0.7
	)
	reg := NewRegistry(nil)
	for gi, g := range grades.All() {
		strat, ok := reg.Strategy(g)
		require.True(t, ok, "grade %s", g)
		gs, ok := strat.(*gradeStrategy)
		require.True(t, ok, "grade %s", g)

		src := numgen.New(uint64(gi + 1))
		means := make([]float64, len(gs.subs))
		for i, sub := range gs.subs {
			mid := (sub.min + sub.max) / 2
			means[i] = meanAbsAnswer(t, strat, src, g, mid, samples)
		}
		for i := 1; i < len(means); i++ {
			if reason, skip := complexitySteps[g][i]; skip {
				t.Logf("%s sub-range %d: %s (%.1f after %.1f)", g, i, reason, means[i], means[i-1])
				continue
			}
			if means[i] < slack*means[i-1] {
				t.Errorf("%s sub-range %d: mean answer magnitude %.1f shrank from %.1f",
					g, i, means[i], means[i-1])
			}
		}
	}
}

// Every sub-range offers at least two question shapes, so the shape draw
// inside a level is a real choice.
func TestEverySubRangeOffersShapeVariety(t *testing.T) {
	reg := NewRegistry(nil)
	for _, g := range grades.All() {
		strat, ok := reg.Strategy(g)
		require.True(t, ok, "grade %s", g)
		gs, ok := strat.(*gradeStrategy)
		require.True(t, ok, "grade %s", g)
		for i, sub := range gs.subs {
			require.GreaterOrEqual(t, len(sub.shapes), 2,
				"grade %s sub-range %d (levels %d-%d)", g, i, sub.min, sub.max)
		}
	}
}

// Declared complexity steps must point at real sub-ranges.
func TestComplexityStepsInRange(t *testing.T) {
	reg := NewRegistry(nil)
	for g, steps := range complexitySteps {
		strat, ok := reg.Strategy(g)
		require.True(t, ok, "grade %s", g)
		gs := strat.(*gradeStrategy)
		for i := range steps {
			require.Greater(t, i, 0, "grade %s step %d", g, i)
			require.Less(t, i, len(gs.subs), "grade %s step %d", g, i)
		}
	}
}
