// Package questgen turns a (grade, level) pair into a well-formed
// multiple-choice math question. Each grade has its own strategy built from
// level sub-ranges of question shapes; all randomness flows through an
// injectable numgen.Source and every float-touching shape is guarded so a
// malformed answer can never reach the player.
package questgen

import (
	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/levelband"
)

// ChoiceCount is the number of options attached to every question.
const ChoiceCount = 4

// Question is one generated question, immutable once returned.
type Question struct {
	// ID is a fresh UUID for this question instance.
	ID string

	// Prompt is the question text shown to the player, plain ASCII with
	// the operands embedded, e.g. "What is 37 + 25?".
	Prompt string

	// Answer is the exact integer answer. Always finite.
	Answer int

	// Choices holds exactly ChoiceCount distinct options, one of which
	// equals Answer, in randomized order.
	Choices []int

	// Category labels the kind of math the question drills.
	Category levelband.QuestionCategory

	// Level is the difficulty level the question was generated for.
	Level int
}

// draft is a shape's raw output before choices and identity are attached.
type draft struct {
	prompt string
	answer int
	cat    levelband.QuestionCategory

	// spread overrides the distractor sampling window when non-zero.
	spread int

	// seeds are values that must appear among the choices, such as the
	// operand a comparison question rejects.
	seeds []int
}

// choiceSpread picks a distractor window that scales with the answer so
// wrong options stay plausible at every magnitude.
func choiceSpread(answer int) int {
	mag := answer
	if mag < 0 {
		mag = -mag
	}
	switch {
	case mag <= 10:
		return 3
	case mag <= 100:
		return 10
	case mag <= 1000:
		return 25
	default:
		return mag / 20
	}
}

// newQuestionID returns a fresh question identifier.
func newQuestionID() string {
	return uuid.NewString()
}
