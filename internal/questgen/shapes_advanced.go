package questgen

import (
	"fmt"
	"math"

	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// Shapes that pass through floating-point math. Every result is routed
// through intFromFloat; a guard failure propagates as an error and the
// strategy substitutes the safe fallback question.

// pythagTriples are primitive and small composite right-triangle triples.
var pythagTriples = [][3]int{
	{3, 4, 5}, {5, 12, 13}, {8, 15, 17}, {7, 24, 25}, {6, 8, 10}, {9, 12, 15}, {20, 21, 29},
}

// shapePythag asks for the hypotenuse of a scaled Pythagorean triple.
// The hypotenuse is recomputed with math.Sqrt and guarded.
func shapePythag(maxHyp int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		t := pythagTriples[src.IntN(len(pythagTriples))]
		maxK := maxHyp / t[2]
		if maxK < 1 {
			maxK = 1
		}
		k := numgen.Between(src, 1, maxK)
		a, b := t[0]*k, t[1]*k
		hyp, err := intFromFloat(math.Sqrt(float64(a*a + b*b)))
		if err != nil {
			return draft{}, fmt.Errorf("pythagoras %d,%d: %w", a, b, err)
		}
		return draft{
			prompt: fmt.Sprintf("A right triangle has shorter sides %d and %d. How long is the hypotenuse?", a, b),
			answer: hyp,
			cat:    levelband.CatGeometry,
		}, nil
	}
}

// trigCase is one (function, angle, multiplier constraint) combination
// whose scaled ratio is an exact integer.
type trigCase struct {
	fn    string
	angle int
	// evenOnly requires an even multiplier (ratio 1/2).
	evenOnly bool
}

var trigCases = []trigCase{
	{"sin", 30, true},
	{"cos", 60, true},
	{"sin", 90, false},
	{"cos", 0, false},
	{"tan", 45, false},
	{"tan", 0, false},
}

// shapeTrigScaled asks for k x trig(angle) at a special angle. The value
// is computed with the real trig functions and guarded, never looked up.
func shapeTrigScaled(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		tc := trigCases[src.IntN(len(trigCases))]
		k := nonZeroBetween(src, -maxK, maxK)
		if tc.evenOnly {
			k *= 2
		}
		rad := float64(tc.angle) * math.Pi / 180
		var ratio float64
		switch tc.fn {
		case "sin":
			ratio = math.Sin(rad)
		case "cos":
			ratio = math.Cos(rad)
		default:
			ratio = math.Tan(rad)
		}
		answer, err := intFromFloat(float64(k) * ratio)
		if err != nil {
			return draft{}, fmt.Errorf("trig %s(%d) x %d: %w", tc.fn, tc.angle, k, err)
		}
		return draft{
			prompt: fmt.Sprintf("What is %s x %s(%d degrees)?", fmtOperand(k), tc.fn, tc.angle),
			answer: answer,
			cat:    levelband.CatTrigonometry,
		}, nil
	}
}

// shapeLogExact asks for log base b of b^e, recomputed via math.Log and
// guarded against float drift.
func shapeLogExact(maxValue int) shape {
	bases := []int{2, 3, 5, 10}
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		b := numgen.Pick(src, bases)
		maxE := 1
		for intPow(b, maxE+1) <= maxValue {
			maxE++
		}
		e := numgen.Between(src, 1, maxE)
		v := intPow(b, e)
		answer, err := intFromFloat(math.Log(float64(v)) / math.Log(float64(b)))
		if err != nil {
			return draft{}, fmt.Errorf("log_%d(%d): %w", b, v, err)
		}
		return draft{
			prompt: fmt.Sprintf("What is log base %d of %d?", b, v),
			answer: answer,
			cat:    levelband.CatLogarithms,
			spread: 3,
		}, nil
	}
}

// shapeLogLaws asks for log_b(x) + log_b(y) where both are exact powers,
// exercising the product law. Guarded like shapeLogExact.
func shapeLogLaws(maxValue int) shape {
	bases := []int{2, 3, 10}
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		b := numgen.Pick(src, bases)
		maxE := 1
		for intPow(b, maxE+1) <= maxValue {
			maxE++
		}
		i := numgen.Between(src, 1, maxE-1)
		j := numgen.Between(src, 1, maxE-i)
		x, y := intPow(b, i), intPow(b, j)
		answer, err := intFromFloat(math.Log(float64(x))/math.Log(float64(b)) +
			math.Log(float64(y))/math.Log(float64(b)))
		if err != nil {
			return draft{}, fmt.Errorf("log_%d(%d)+log_%d(%d): %w", b, x, b, y, err)
		}
		return draft{
			prompt: fmt.Sprintf("What is log base %d of %d plus log base %d of %d?", b, x, b, y),
			answer: answer,
			cat:    levelband.CatLogarithms,
			spread: 3,
		}, nil
	}
}

// shapeDerivativeAt differentiates ax^2 + bx + c and evaluates at x = k.
func shapeDerivativeAt(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -5, 5)
		b := nonZeroBetween(src, -9, 9)
		c := nonZeroBetween(src, -9, 9)
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("f(x) = %sx^2 + %sx + %s. What is f'(%s)?",
				fmtOperand(a), fmtOperand(b), fmtOperand(c), fmtOperand(k)),
			answer: 2*a*k + b,
			cat:    levelband.CatCalculus,
		}, nil
	}
}

// shapeIntegralConst computes the definite integral of a constant.
// Evaluated through floats and guarded, per the safety rule for calculus.
func shapeIntegralConst(maxC int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		c := nonZeroBetween(src, -maxC, maxC)
		p := numgen.Between(src, -10, 9)
		q := numgen.Between(src, p+1, 10)
		answer, err := intFromFloat(float64(c) * float64(q-p))
		if err != nil {
			return draft{}, fmt.Errorf("integral of %d over [%d,%d]: %w", c, p, q, err)
		}
		return draft{
			prompt: fmt.Sprintf("What is the integral of %s dx from %s to %s?",
				fmtOperand(c), fmtOperand(p), fmtOperand(q)),
			answer: answer,
			cat:    levelband.CatCalculus,
		}, nil
	}
}

// shapeIntegralLinear integrates 2ax + b over [p, q] via the
// antiderivative ax^2 + bx, evaluated in floats and guarded. The leading
// coefficient is even by construction so the result is always integral.
func shapeIntegralLinear(maxA int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -maxA, maxA)
		b := nonZeroBetween(src, -9, 9)
		p := numgen.Between(src, -8, 7)
		q := numgen.Between(src, p+1, 8)
		anti := func(x int) float64 {
			return float64(a)*float64(x)*float64(x) + float64(b)*float64(x)
		}
		answer, err := intFromFloat(anti(q) - anti(p))
		if err != nil {
			return draft{}, fmt.Errorf("integral of %dx+%d over [%d,%d]: %w", 2*a, b, p, q, err)
		}
		return draft{
			prompt: fmt.Sprintf("What is the integral of %sx + %s dx from %s to %s?",
				fmtOperand(2*a), fmtOperand(b), fmtOperand(p), fmtOperand(q)),
			answer: answer,
			cat:    levelband.CatCalculus,
		}, nil
	}
}

// shapeLimitPoly asks for the limit of (x^2 - k^2)/(x - k) as x -> k,
// which is 2k after factoring.
func shapeLimitPoly(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("What is the limit of (x^2 - %d)/(x - %s) as x approaches %s?",
				k*k, fmtOperand(k), fmtOperand(k)),
			answer: 2 * k,
			cat:    levelband.CatCalculus,
		}, nil
	}
}

// shapeSecondDeriv differentiates ax^3 + bx^2 twice and evaluates at k.
func shapeSecondDeriv(maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := nonZeroBetween(src, -5, 5)
		b := nonZeroBetween(src, -9, 9)
		k := nonZeroBetween(src, -maxK, maxK)
		return draft{
			prompt: fmt.Sprintf("f(x) = %sx^3 + %sx^2. What is f''(%s)?",
				fmtOperand(a), fmtOperand(b), fmtOperand(k)),
			answer: 6*a*k + 2*b,
			cat:    levelband.CatCalculus,
		}, nil
	}
}
