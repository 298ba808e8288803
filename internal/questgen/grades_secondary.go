package questgen

import (
	"go.uber.org/zap"

	"github.com/abhisek/mathquest/internal/grades"
)

// Secondary strategies. Negative answers are routine from M1 onwards.

func newM1(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.M1, log,
		[]subRange{
			{1, 20, []shape{shapeNegAdd(20), shapeNegSub(20)}},
			{21, 40, []shape{shapeIntMul(9), shapeIntDivExact(9)}},
			{41, 60, []shape{shapeSolveXPlus(25), shapeSolveXMinus(25)}},
			{61, 80, []shape{shapeSolveAX(12), shapeSolveXPlus(40)}},
			{81, 100, []shape{shapeEvalExpr(10, 9), shapeExpandEval(10)}},
		},
	)
}

func newM2(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.M2, log,
		[]subRange{
			{1, 20, []shape{shapeSquare(12), shapeSquareRoot(12)}},
			{21, 40, []shape{shapeAngleTriangle(), shapeAngleLine()}},
			{41, 60, []shape{shapeSolveAXPlusB(12), shapeSolveAX(20)}},
			{61, 80, []shape{shapeExpandEval(12), shapeEvalExpr(12, 9)}},
			{81, 100, []shape{shapeNthTerm(10, 9, 20), shapeGeomNth()}},
		},
	)
}

func newM3(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.M3, log,
		[]subRange{
			{1, 20, []shape{shapePythag(100), shapeAngleTriangle()}},
			{21, 40, []shape{shapeSolveXSquared(20), shapeSquareRoot(20)}},
			{41, 60, []shape{shapeQuadEval(12), shapeEvalExpr(12, 12)}},
			{61, 80, []shape{shapeSimultaneous(), shapeSolveAXPlusB(20)}},
			{81, 100, []shape{shapeIndexLaws(1024), shapePower([]int{2, 3, 5}, 1024)}},
		},
	)
}

func newM4(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.M4, log,
		[]subRange{
			{1, 20, []shape{shapeEvalFunc(12), shapeComposite(9)}},
			{21, 40, []shape{shapeTrigScaled(50), shapePythag(100)}},
			{41, 60, []shape{shapeLogExact(1024), shapeLogLaws(1024)}},
			{61, 80, []shape{shapeComposite(12), shapeEvalFunc(20)}},
			{81, 100, []shape{shapeEvalExpr(20, 12), shapeQuadEval(15)}},
		},
	)
}

func newM5(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.M5, log,
		[]subRange{
			{1, 20, []shape{shapeNthTerm(20, 12, 25), shapeGeomNth()}},
			{21, 40, []shape{shapeGeomNth(), shapePower([]int{2, 3, 5}, 256)}},
			{41, 60, []shape{shapeLogLaws(4096), shapeLogExact(4096)}},
			{61, 80, []shape{shapeFactorial(7), shapePermutations(8)}},
			{81, 100, []shape{shapeSeriesSum(20, 12), shapeNthTerm(30, 15, 40)}},
		},
	)
}

func newM6(log *zap.Logger) *gradeStrategy {
	return newGradeStrategy(grades.M6, log,
		[]subRange{
			{1, 20, []shape{shapeDerivativeAt(10), shapeLimitPoly(15)}},
			{21, 40, []shape{shapeIntegralConst(20), shapeDerivativeAt(20)}},
			{41, 60, []shape{shapeIntegralLinear(6), shapeIntegralConst(30)}},
			{61, 80, []shape{shapeLimitPoly(20), shapeDerivativeAt(12)}},
			{81, 100, []shape{shapeSecondDeriv(15), shapeDerivativeAt(25)}},
		},
	)
}
