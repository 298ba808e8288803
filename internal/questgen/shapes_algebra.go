package questgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// Order-of-operations, geometry, integer, and algebra shapes.

// shapeBodmas asks a + b x c (multiplication binds first).
func shapeBodmas(maxOperand int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 1, maxOperand)
		b := numgen.Between(src, 2, 9)
		c := numgen.Between(src, 2, 9)
		return draft{
			prompt: fmt.Sprintf("What is %d + %d x %d?", a, b, c),
			answer: a + b*c,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapeBodmasBrackets asks (a + b) x c.
func shapeBodmasBrackets(maxOperand int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 1, maxOperand)
		b := numgen.Between(src, 1, maxOperand)
		c := numgen.Between(src, 2, 9)
		return draft{
			prompt: fmt.Sprintf("What is (%d + %d) x %d?", a, b, c),
			answer: (a + b) * c,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapePerimeter asks for the perimeter of an l x w rectangle.
func shapePerimeter(maxSide int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		l := numgen.Between(src, 2, maxSide)
		w := numgen.Between(src, 1, l)
		return draft{
			prompt: fmt.Sprintf("A rectangle is %d long and %d wide. What is its perimeter?", l, w),
			answer: 2 * (l + w),
			cat:    levelband.CatGeometry,
		}, nil
	}
}

// shapeArea asks for the area of an l x w rectangle.
func shapeArea(maxSide int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		l := numgen.Between(src, 2, maxSide)
		w := numgen.Between(src, 1, l)
		return draft{
			prompt: fmt.Sprintf("A rectangle is %d long and %d wide. What is its area?", l, w),
			answer: l * w,
			cat:    levelband.CatGeometry,
		}, nil
	}
}

// nonZeroBetween samples [lo, hi] excluding zero.
func nonZeroBetween(src numgen.Source, lo, hi int) int {
	for {
		v := numgen.Between(src, lo, hi)
		if v != 0 {
			return v
		}
	}
}

// shapeNegAdd adds two integers, at least one negative.
func shapeNegAdd(maxMag int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -maxMag, maxMag)
		b := nonZeroBetween(src, -maxMag, -1)
		return draft{
			prompt: fmt.Sprintf("What is %s + %s?", fmtOperand(a), fmtOperand(b)),
			answer: a + b,
			cat:    levelband.CatIntegers,
		}, nil
	}
}

// shapeNegSub subtracts integers spanning zero.
func shapeNegSub(maxMag int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -maxMag, maxMag)
		b := nonZeroBetween(src, -maxMag, maxMag)
		return draft{
			prompt: fmt.Sprintf("What is %s - %s?", fmtOperand(a), fmtOperand(b)),
			answer: a - b,
			cat:    levelband.CatIntegers,
		}, nil
	}
}

// shapeIntMul multiplies two signed single-digit-ish integers.
func shapeIntMul(maxMag int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -maxMag, maxMag)
		b := nonZeroBetween(src, -maxMag, maxMag)
		return draft{
			prompt: fmt.Sprintf("What is %s x %s?", fmtOperand(a), fmtOperand(b)),
			answer: a * b,
			cat:    levelband.CatIntegers,
		}, nil
	}
}

// shapeIntDivExact divides signed integers with the quotient sampled first.
func shapeIntDivExact(maxMag int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		q := nonZeroBetween(src, -maxMag, maxMag)
		d := nonZeroBetween(src, -maxMag, maxMag)
		return draft{
			prompt: fmt.Sprintf("What is %s / %s?", fmtOperand(q*d), fmtOperand(d)),
			answer: q,
			cat:    levelband.CatIntegers,
		}, nil
	}
}

// shapeSolveXPlus solves x + a = b for x.
func shapeSolveXPlus(maxMag int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		x := nonZeroBetween(src, -maxMag, maxMag)
		a := nonZeroBetween(src, -maxMag, maxMag)
		return draft{
			prompt: fmt.Sprintf("Solve for x: x + %s = %s", fmtOperand(a), fmtOperand(x+a)),
			answer: x,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeSolveXMinus solves x - a = b for x.
func shapeSolveXMinus(maxMag int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		x := nonZeroBetween(src, -maxMag, maxMag)
		a := nonZeroBetween(src, -maxMag, maxMag)
		return draft{
			prompt: fmt.Sprintf("Solve for x: x - %s = %s", fmtOperand(a), fmtOperand(x-a)),
			answer: x,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeSolveAX solves ax = b for x.
func shapeSolveAX(maxX int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 2, 9)
		x := nonZeroBetween(src, -maxX, maxX)
		return draft{
			prompt: fmt.Sprintf("Solve for x: %dx = %s", a, fmtOperand(a*x)),
			answer: x,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeSolveAXPlusB solves ax + b = c for x.
func shapeSolveAXPlusB(maxX int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 2, 9)
		x := nonZeroBetween(src, -maxX, maxX)
		b := nonZeroBetween(src, -20, 20)
		return draft{
			prompt: fmt.Sprintf("Solve for x: %dx + %s = %s", a, fmtOperand(b), fmtOperand(a*x+b)),
			answer: x,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeEvalExpr evaluates ax + b at x = k.
func shapeEvalExpr(maxK, maxCoef int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -maxCoef, maxCoef)
		b := nonZeroBetween(src, -maxCoef, maxCoef)
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("If x = %s, what is %dx + %s?", fmtOperand(k), a, fmtOperand(b)),
			answer: a*k + b,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeExpandEval evaluates a(x + b) at x = k.
func shapeExpandEval(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 2, 9)
		b := nonZeroBetween(src, -9, 9)
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("If x = %s, what is %d(x + %s)?", fmtOperand(k), a, fmtOperand(b)),
			answer: a * (k + b),
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeNthTerm asks for the n-th term of an arithmetic sequence shown by
// its first three terms.
func shapeNthTerm(maxStart, maxStep, maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		s := numgen.Between(src, -maxStart, maxStart)
		d := nonZeroBetween(src, -maxStep, maxStep)
		n := numgen.Between(src, 5, maxN)
		return draft{
			prompt: fmt.Sprintf("A sequence starts %d, %d, %d, ... What is term %d?", s, s+d, s+2*d, n),
			answer: s + (n-1)*d,
			cat:    levelband.CatSequences,
		}, nil
	}
}

// shapeSquareRoot asks for the square root of a perfect square.
func shapeSquareRoot(maxRoot int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 2, maxRoot)
		return draft{
			prompt: fmt.Sprintf("What is the square root of %d?", n*n),
			answer: n,
			cat:    levelband.CatPowers,
			spread: 4,
		}, nil
	}
}

// shapeSolveXSquared solves x*x = k for the positive root.
func shapeSolveXSquared(maxRoot int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 2, maxRoot)
		return draft{
			prompt: fmt.Sprintf("x squared = %d and x > 0. What is x?", n*n),
			answer: n,
			cat:    levelband.CatAlgebra,
			spread: 4,
		}, nil
	}
}

// shapeAngleTriangle asks for the missing angle of a triangle.
func shapeAngleTriangle() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 20, 100)
		b := numgen.Between(src, 20, 170-a)
		return draft{
			prompt: fmt.Sprintf("Two angles of a triangle are %d and %d degrees. What is the third angle?", a, b),
			answer: 180 - a - b,
			cat:    levelband.CatGeometry,
		}, nil
	}
}

// shapeAngleLine asks for the missing angle on a straight line.
func shapeAngleLine() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 10, 170)
		return draft{
			prompt: fmt.Sprintf("Two angles on a straight line. One is %d degrees. What is the other?", a),
			answer: 180 - a,
			cat:    levelband.CatGeometry,
		}, nil
	}
}

// shapeQuadEval evaluates x*x + bx + c at x = k.
func shapeQuadEval(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		b := nonZeroBetween(src, -9, 9)
		c := nonZeroBetween(src, -9, 9)
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("If x = %s, what is x squared + %sx + %s?", fmtOperand(k), fmtOperand(b), fmtOperand(c)),
			answer: k*k + b*k + c,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeSimultaneous builds a pair of linear equations with an integer
// solution and asks for x. Coefficients are chosen so the determinant is
// never zero.
func shapeSimultaneous() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		x := nonZeroBetween(src, -9, 9)
		y := nonZeroBetween(src, -9, 9)
		a := numgen.Between(src, 1, 5)
		b := numgen.Between(src, 1, 5)
		// Second equation x - y keeps the determinant -(a+b) non-zero.
		c1 := a*x + b*y
		c2 := x - y
		return draft{
			prompt: fmt.Sprintf("If %dx + %dy = %s and x - y = %s, what is x?",
				a, b, fmtOperand(c1), fmtOperand(c2)),
			answer: x,
			cat:    levelband.CatAlgebra,
			spread: 5,
		}, nil
	}
}

// shapeIndexLaws evaluates b^m x b^n as a number.
func shapeIndexLaws(maxAnswer int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		b := numgen.Pick(src, []int{2, 3, 5})
		totalMax := 2
		for intPow(b, totalMax+1) <= maxAnswer {
			totalMax++
		}
		m := numgen.Between(src, 1, totalMax-1)
		n := numgen.Between(src, 1, totalMax-m)
		return draft{
			prompt: fmt.Sprintf("What is %d^%d x %d^%d?", b, m, b, n),
			answer: intPow(b, m+n),
			cat:    levelband.CatPowers,
		}, nil
	}
}

// shapeEvalFunc evaluates f(x) = ax + b at a point.
func shapeEvalFunc(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -9, 9)
		b := nonZeroBetween(src, -20, 20)
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("f(x) = %dx + %s. What is f(%s)?", a, fmtOperand(b), fmtOperand(k)),
			answer: a*k + b,
			cat:    levelband.CatFunctions,
		}, nil
	}
}

// shapeComposite evaluates f(g(k)) for f(x) = x + a, g(x) = bx.
func shapeComposite(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -20, 20)
		b := nonZeroBetween(src, -9, 9)
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("f(x) = x + %s and g(x) = %dx. What is f(g(%s))?",
				fmtOperand(a), b, fmtOperand(k)),
			answer: b*k + a,
			cat:    levelband.CatFunctions,
		}, nil
	}
}

// shapeGeomNth asks for the n-th term of a geometric sequence.
func shapeGeomNth() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		s := numgen.Between(src, 1, 5)
		r := numgen.Pick(src, []int{2, 3, -2})
		n := numgen.Between(src, 3, 6)
		return draft{
			prompt: fmt.Sprintf("A geometric sequence starts %d, %d, %d, ... What is term %d?",
				s, s*r, s*r*r, n),
			answer: s * intPow(r, n-1),
			cat:    levelband.CatSequences,
		}, nil
	}
}

// shapeSeriesSum asks for the sum of the first n terms of an arithmetic
// sequence. The sum is accumulated in integers, never via the n/2 formula.
func shapeSeriesSum(maxStart, maxStep int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		s := numgen.Between(src, -maxStart, maxStart)
		d := nonZeroBetween(src, -maxStep, maxStep)
		n := numgen.Between(src, 4, 12)
		sum := 0
		for i := 0; i < n; i++ {
			sum += s + i*d
		}
		return draft{
			prompt: fmt.Sprintf("A sequence starts %d, %d, %d, ... What is the sum of the first %d terms?",
				s, s+d, s+2*d, n),
			answer: sum,
			cat:    levelband.CatSequences,
		}, nil
	}
}
