package questgen

import (
	"go.uber.org/zap"

	"github.com/abhisek/mathquest/internal/grades"
)

// Primary strategies.

func newP1(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.P1, log,
		[]subRange{
			{1, 10, []shape{shapeCount(10), shapeCompareBigger(10)}},
			{11, 30, []shape{shapeAddNoCarryTeens(), shapeAddWithin(10)}},
			{31, 50, []shape{shapeSubNoBorrowTeens(), shapeSubWithin(10)}},
			{51, 70, []shape{shapeAddWithin(20), shapeSubWithin(20)}},
			{71, 90, []shape{shapeDouble(20), shapeHalf(20)}},
			{91, 100, []shape{shapeMissingAddend(20), shapeMissingSubtrahend(20)}},
		},
		wordAdd(20), wordSub(20),
	)
}

func newP2(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.P2, log,
		[]subRange{
			{1, 20, []shape{shapeAddCarry2d(), shapeAddNoCarry2d()}},
			{21, 40, []shape{shapeSub2dBorrow(), shapeSubNoBorrow2d()}},
			// Levels 41-55 use only the 2, 5, 10 tables with multipliers
			// 1-10; the end-to-end distribution test pins this band.
			{41, 55, []shape{shapeTables([]int{2, 5, 10}, 10), shapeTablesRev([]int{2, 5, 10}, 10)}},
			{56, 70, []shape{shapeTables([]int{3, 4, 6}, 12), shapeTablesRev([]int{3, 4, 6}, 12)}},
			{71, 85, []shape{shapeDivExact([]int{2, 3, 4, 5, 6, 10}, 10), shapeMissingFactor([]int{2, 3, 4, 5, 6, 10}, 10)}},
			{86, 100, []shape{shapeAddRange(10, 99), shapeSubRange(10, 99), shapeTables([]int{2, 3, 4, 5, 6, 10}, 10)}},
		},
		wordAdd(50), wordSub(50), wordMul(5, 10),
	)
}

func newP3(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.P3, log,
		[]subRange{
			{1, 20, []shape{shapeTablesRange(2, 10, 10), shapeTablesRev([]int{2, 3, 4, 5, 6, 7, 8, 9, 10}, 10)}},
			{21, 40, []shape{shapeTablesRange(2, 12, 12), shapeMissingFactor([]int{2, 3, 4, 5, 6, 7, 8, 9}, 12)}},
			{41, 60, []shape{shapeDivExact([]int{2, 3, 4, 6, 7, 8, 9, 11, 12}, 12), shapeMissingFactor([]int{3, 4, 6, 7, 8, 9, 11, 12}, 12)}},
			{61, 80, []shape{shapeAddRange(100, 999), shapeDouble(999)}},
			{81, 100, []shape{shapeSubRange(100, 999), shapeAddRange(100, 999)}},
		},
		wordMul(6, 12), wordShare(12, 6),
	)
}

func newP4(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.P4, log,
		[]subRange{
			{1, 20, []shape{shapeNthMultiple(12, 9), shapeMissingFactor([]int{3, 4, 6, 7, 8, 9}, 12)}},
			{21, 40, []shape{shapeFractionOf([]int{2, 3, 4, 5, 10}, 12), shapeFractionOf([]int{2, 4, 5, 10}, 25)}},
			{41, 60, []shape{shapeMul(10, 99, 2, 9), shapeNthMultiple(99, 9)}},
			{61, 80, []shape{shapeLongDivExact(2, 9, 10, 99), shapeDivExact([]int{3, 4, 6, 7, 8, 9}, 50)}},
			{81, 100, []shape{shapeMul(10, 99, 10, 99), shapeMul(100, 999, 2, 9)}},
		},
		wordMul(9, 25), wordShare(25, 9),
	)
}

func newP5(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.P5, log,
		[]subRange{
			{1, 20, []shape{shapeBodmas(20), shapeBodmasBrackets(20)}},
			{21, 40, []shape{shapePercentOf(100), shapeFractionOf([]int{2, 4, 5, 10}, 20)}},
			{41, 60, []shape{shapePerimeter(30), shapeArea(30)}},
			{61, 80, []shape{shapeAddRange(1000, 9999), shapeSubRange(1000, 9999)}},
			{81, 100, []shape{shapeBodmasBrackets(99), shapeBodmas(99)}},
		},
		wordAdd(100), wordMul(9, 50),
	)
}

func newP6(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.P6, log,
		[]subRange{
			{1, 20, []shape{shapeRatioShare(10), shapeFractionOf([]int{2, 3, 4, 5}, 10)}},
			{21, 40, []shape{shapeAverage(30), shapeHalf(60)}},
			{41, 60, []shape{shapeSquare(20), shapeCube(7)}},
			{61, 80, []shape{shapePercentOf(250), shapeFractionOf([]int{2, 3, 4, 5, 10}, 50)}},
			{81, 100, []shape{shapeBodmasBrackets(99), shapeBodmas(99), shapeDivExact([]int{3, 4, 6, 7, 8, 9}, 50)}},
		},
		wordShare(20, 8), wordMul(9, 50),
	)
}
