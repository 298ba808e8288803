package levelband

import "github.com/abhisek/mathquest/internal/grades"

// QuestionCategory labels the kind of math a band drills.
type QuestionCategory string

const (
	CatCounting       QuestionCategory = "counting"
	CatComparison     QuestionCategory = "comparison"
	CatAddition       QuestionCategory = "addition"
	CatSubtraction    QuestionCategory = "subtraction"
	CatMultiplication QuestionCategory = "multiplication"
	CatDivision       QuestionCategory = "division"
	CatFractions      QuestionCategory = "fractions"
	CatPercentages    QuestionCategory = "percentages"
	CatAlgebra        QuestionCategory = "algebra"
	CatGeometry       QuestionCategory = "geometry"
	CatIntegers       QuestionCategory = "integers"
	CatPowers         QuestionCategory = "powers"
	CatFunctions      QuestionCategory = "functions"
	CatTrigonometry   QuestionCategory = "trigonometry"
	CatLogarithms     QuestionCategory = "logarithms"
	CatSequences      QuestionCategory = "sequences"
	CatCalculus       QuestionCategory = "calculus"
	CatWordProblem    QuestionCategory = "word-problem"
)

// Range bounds the operand magnitudes a band is allowed to produce.
type Range struct {
	Min int
	Max int
}

// Band describes a contiguous run of levels sharing one skill focus.
// Bands are static data created at init and never mutated.
type Band struct {
	MinLevel    int
	MaxLevel    int
	Description string
	Categories  []QuestionCategory
	Numeric     Range
	Features    []string
}

// Contains reports whether level falls inside the band.
func (b *Band) Contains(level int) bool {
	return level >= b.MinLevel && level <= b.MaxLevel
}

// HasFeature reports whether the band carries the named feature flag.
func (b *Band) HasFeature(name string) bool {
	for _, f := range b.Features {
		if f == name {
			return true
		}
	}
	return false
}

// Config returns the band covering level for the given grade, or nil when
// the grade is unknown or no band matches. Callers must treat nil as "use
// the fallback generator", never as a fatal condition.
func Config(g grades.Grade, level int) *Band {
	bands, ok := tables[g]
	if !ok {
		return nil
	}
	for i := range bands {
		if bands[i].Contains(level) {
			return &bands[i]
		}
	}
	return nil
}

// Bands returns the full ordered band table for a grade (nil if unknown).
func Bands(g grades.Grade) []Band {
	return tables[g]
}

// DefaultQuestionCount is used for unrecognized grades.
const DefaultQuestionCount = 10

// QuestionCount returns the number of questions in one session for a grade.
func QuestionCount(g grades.Grade) int {
	if grades.CategoryOf(g) == grades.CategoryKindergarten && grades.Valid(g) {
		return 5
	}
	if !grades.Valid(g) {
		return DefaultQuestionCount
	}
	return 10
}

// tables maps every grade to its ordered band list. Each list tiles
// [1,100] exactly; validate_test.go asserts this for all grades.
var tables = map[grades.Grade][]Band{
	grades.K1: kinder1Bands,
	grades.K2: kinder2Bands,
	grades.K3: kinder3Bands,
	grades.P1: primary1Bands,
	grades.P2: primary2Bands,
	grades.P3: primary3Bands,
	grades.P4: primary4Bands,
	grades.P5: primary5Bands,
	grades.P6: primary6Bands,
	grades.M1: secondary1Bands,
	grades.M2: secondary2Bands,
	grades.M3: secondary3Bands,
	grades.M4: secondary4Bands,
	grades.M5: secondary5Bands,
	grades.M6: secondary6Bands,
}
