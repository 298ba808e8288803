package questgen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/numgen"
)

func assertWellFormed(t *testing.T, q Question) {
	t.Helper()
	require.NotEmpty(t, q.ID)
	require.NotEmpty(t, q.Prompt)
	require.Len(t, q.Choices, ChoiceCount)

	seen := map[int]bool{}
	found := false
	for _, c := range q.Choices {
		assert.False(t, seen[c], "duplicate choice %d in %v", c, q.Choices)
		seen[c] = true
		if c == q.Answer {
			found = true
		}
	}
	assert.True(t, found, "answer %d missing from choices %v (prompt %q)", q.Answer, q.Choices, q.Prompt)
}

func TestGenerateAllGradesAllLevels(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(1)
	for _, g := range grades.All() {
		for level := 1; level <= 100; level++ {
			q := reg.Generate(src, g, level)
			assertWellFormed(t, q)
			assert.Equal(t, level, q.Level)
		}
	}
}

func TestGenerateUnknownGradeFallsBack(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(2)
	q := reg.Generate(src, grades.Grade("z9"), 50)
	assertWellFormed(t, q)
}

func TestGenerateClampsLevel(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(3)
	assert.Equal(t, 1, reg.Generate(src, grades.K1, -4).Level)
	assert.Equal(t, 100, reg.Generate(src, grades.K1, 250).Level)
}

func TestKindergartenLevelFiveAnswersStaySmall(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(4)
	for i := 0; i < 200; i++ {
		q := reg.Generate(src, grades.K1, 5)
		assertWellFormed(t, q)
		assert.GreaterOrEqual(t, q.Answer, 1, "prompt %q", q.Prompt)
		assert.LessOrEqual(t, q.Answer, 5, "prompt %q", q.Prompt)
	}
}

func TestCompareQuestionsOfferBothShownNumbers(t *testing.T) {
	// A comparison question names two numbers; an option set that skips
	// the rejected one gives the answer away. Both operands must always
	// be offered.
	reg := NewRegistry(nil)
	src := numgen.New(6)
	for i := 0; i < 300; i++ {
		q := reg.Generate(src, grades.K1, 30)
		assertWellFormed(t, q)
		var a, b int
		if _, err := fmt.Sscanf(q.Prompt, "Which number is bigger: %d or %d?", &a, &b); err != nil {
			_, err = fmt.Sscanf(q.Prompt, "Which number is smaller: %d or %d?", &a, &b)
			require.NoError(t, err, "prompt %q", q.Prompt)
		}
		assert.Contains(t, q.Choices, a, "prompt %q choices %v", q.Prompt, q.Choices)
		assert.Contains(t, q.Choices, b, "prompt %q choices %v", q.Prompt, q.Choices)
	}
}

func TestPrimaryTwoLevel45IsTablesOf2And5And10(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(5)
	allowed := map[int]bool{2: true, 5: true, 10: true}
	for i := 0; i < 200; i++ {
		q := reg.Generate(src, grades.P2, 45)
		assertWellFormed(t, q)

		var a, b int
		_, err := fmt.Sscanf(q.Prompt, "What is %d x %d?", &a, &b)
		require.NoError(t, err, "prompt %q", q.Prompt)
		// Facts come in both orientations: one operand is the table,
		// the other a multiplier in 1..10.
		table, mult := a, b
		if !allowed[table] {
			table, mult = b, a
		}
		assert.True(t, allowed[table], "no operand from {2,5,10} in prompt %q", q.Prompt)
		assert.GreaterOrEqual(t, mult, 1)
		assert.LessOrEqual(t, mult, 10)
		assert.Equal(t, a*b, q.Answer)
	}
}

func TestWordProblems(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(6)
	for _, g := range []grades.Grade{grades.K1, grades.P1, grades.P3, grades.P6} {
		for i := 0; i < 50; i++ {
			q := reg.WordProblem(src, g, 30)
			assertWellFormed(t, q)
			assert.GreaterOrEqual(t, q.Answer, 0, "prompt %q", q.Prompt)
		}
	}
}

func TestWordProblemFallsBackWithoutTemplates(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(7)
	// Secondary grades carry no word templates and must still answer.
	q := reg.WordProblem(src, grades.M3, 40)
	assertWellFormed(t, q)
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	reg := NewRegistry(nil)
	a := reg.Generate(numgen.New(42), grades.P4, 60)
	b := reg.Generate(numgen.New(42), grades.P4, 60)
	assert.Equal(t, a.Prompt, b.Prompt)
	assert.Equal(t, a.Answer, b.Answer)
	assert.Equal(t, a.Choices, b.Choices)
}

func TestAdvancedShapesAlwaysIntegral(t *testing.T) {
	reg := NewRegistry(nil)
	src := numgen.New(8)
	// Guarded-float territory: trig, logs, roots, calculus.
	for _, g := range []grades.Grade{grades.M3, grades.M4, grades.M5, grades.M6} {
		for level := 60; level <= 100; level++ {
			for i := 0; i < 20; i++ {
				q := reg.Generate(src, g, level)
				assertWellFormed(t, q)
			}
		}
	}
}

func TestStrategyLookup(t *testing.T) {
	reg := NewRegistry(nil)
	for _, g := range grades.All() {
		s, ok := reg.Strategy(g)
		require.True(t, ok, "grade %s", g)
		for level := 1; level <= 100; level++ {
			assert.True(t, s.SupportsLevel(level), "grade %s level %d", g, level)
		}
	}
	_, ok := reg.Strategy(grades.Grade("z9"))
	assert.False(t, ok)
}

func TestCategoriesNonEmpty(t *testing.T) {
	reg := NewRegistry(nil)
	for _, g := range grades.All() {
		s, _ := reg.Strategy(g)
		for _, level := range []int{1, 25, 50, 75, 100} {
			assert.NotEmpty(t, s.Categories(level), "grade %s level %d", g, level)
		}
	}
}
