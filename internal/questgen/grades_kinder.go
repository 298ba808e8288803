package questgen

import (
	"go.uber.org/zap"

	"github.com/abhisek/mathquest/internal/grades"
)

// Kindergarten strategies. Sub-ranges mirror the levelband tables for the
// same grades; answer magnitudes grow as levels climb except where a
// harder kind of question takes over, like the missing-number problems
// closing out K3.

func newK1(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.K1, log,
		[]subRange{
			{1, 10, []shape{shapeCount(5), shapeAfter(5)}},
			{11, 25, []shape{shapeCount(10), shapeBefore(10)}},
			{26, 45, []shape{shapeCompareBigger(10), shapeCompareSmaller(10)}},
			{46, 70, []shape{shapeAfter(10), shapeBefore(10)}},
			{71, 100, []shape{shapeAddWithin(10), shapeAfter(10)}},
		},
		wordAdd(10),
	)
}

func newK2(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.K2, log,
		[]subRange{
			{1, 15, []shape{shapeCount(15), shapeAfter(15)}},
			{16, 35, []shape{shapeCount(20), shapeBefore(20)}},
			{36, 55, []shape{shapeCompareBigger(20), shapeCompareSmaller(20)}},
			{56, 80, []shape{shapeAddWithin(20), shapeDouble(20)}},
			{81, 100, []shape{shapeAfter(20), shapeBefore(20)}},
		},
		wordAdd(15),
	)
}

func newK3(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.K3, log,
		[]subRange{
			{1, 15, []shape{shapeAddWithin(10), shapeDouble(10)}},
			{16, 40, []shape{shapeSubWithin(10), shapeTakeAway(10)}},
			{41, 60, []shape{shapeBefore(20), shapeAfter(20), shapeCompareBigger(20)}},
			{61, 85, []shape{shapeAddWithin(20), shapeSubWithin(20)}},
			{86, 100, []shape{shapeMissingAddend(20), shapeMissingSubtrahend(20)}},
		},
		wordAdd(15), wordSub(15),
	)
}
