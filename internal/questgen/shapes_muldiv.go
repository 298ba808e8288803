package questgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// Multiplication, division, fraction, and percentage shapes. Exact
// division is guaranteed by sampling divisor and quotient first and
// multiplying, never by dividing and hoping.

// shapeTables drills multiplication facts for the given tables, with the
// multiplier in [1, maxMult].
func shapeTables(tables []int, maxMult int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		m := numgen.Pick(src, tables)
		k := numgen.Between(src, 1, maxMult)
		return draft{
			prompt: fmt.Sprintf("What is %d x %d?", m, k),
			answer: m * k,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapeTablesRev drills the same facts with the operands swapped, so
// players see both orientations of each table entry.
func shapeTablesRev(tables []int, maxMult int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		m := numgen.Pick(src, tables)
		k := numgen.Between(src, 1, maxMult)
		return draft{
			prompt: fmt.Sprintf("What is %d x %d?", k, m),
			answer: k * m,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapeTablesRange drills tables lo..hi with multipliers 1..maxMult.
func shapeTablesRange(lo, hi, maxMult int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		m := numgen.Between(src, lo, hi)
		k := numgen.Between(src, 1, maxMult)
		return draft{
			prompt: fmt.Sprintf("What is %d x %d?", m, k),
			answer: m * k,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapeDivExact builds dividend = divisor x quotient so the division is
// always whole.
func shapeDivExact(divisors []int, maxQuotient int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		d := numgen.Pick(src, divisors)
		q := numgen.Between(src, 1, maxQuotient)
		return draft{
			prompt: fmt.Sprintf("What is %d / %d?", d*q, d),
			answer: q,
			cat:    levelband.CatDivision,
		}, nil
	}
}

// shapeMissingFactor asks for the blank in "? x a = b".
func shapeMissingFactor(tables []int, maxQuotient int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Pick(src, tables)
		q := numgen.Between(src, 2, maxQuotient)
		return draft{
			prompt: fmt.Sprintf("? x %d = %d. What is the missing number?", a, a*q),
			answer: q,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapeNthMultiple asks for the k-th multiple of n.
func shapeNthMultiple(maxN, maxK int) shape {
	ordinal := func(k int) string {
		switch k {
		case 1:
			return "1st"
		case 2:
			return "2nd"
		case 3:
			return "3rd"
		default:
			return fmt.Sprintf("%dth", k)
		}
	}
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 2, maxN)
		k := numgen.Between(src, 2, maxK)
		return draft{
			prompt: fmt.Sprintf("What is the %s multiple of %d?", ordinal(k), n),
			answer: n * k,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapeMul multiplies a in [aLo,aHi] by b in [bLo,bHi].
func shapeMul(aLo, aHi, bLo, bHi int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, aLo, aHi)
		b := numgen.Between(src, bLo, bHi)
		return draft{
			prompt: fmt.Sprintf("What is %d x %d?", a, b),
			answer: a * b,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapeLongDivExact is long division with the quotient sampled first.
func shapeLongDivExact(dLo, dHi, qLo, qHi int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		d := numgen.Between(src, dLo, dHi)
		q := numgen.Between(src, qLo, qHi)
		return draft{
			prompt: fmt.Sprintf("What is %d / %d?", d*q, d),
			answer: q,
			cat:    levelband.CatDivision,
		}, nil
	}
}

// shapeFractionOf asks for num/den of an amount built as den x k, so the
// result is always whole.
func shapeFractionOf(dens []int, maxK int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		den := numgen.Pick(src, dens)
		num := numgen.Between(src, 1, den-1)
		k := numgen.Between(src, 2, maxK)
		amount := den * k
		return draft{
			prompt: fmt.Sprintf("What is %d/%d of %d?", num, den, amount),
			answer: num * k,
			cat:    levelband.CatFractions,
		}, nil
	}
}

// percentFactors maps a friendly percentage to 100/pct, used to build
// bases that divide evenly.
var percentFactors = map[int]int{10: 10, 20: 5, 25: 4, 50: 2}

// shapePercentOf asks for pct% of a base constructed so the result is a
// whole number.
func shapePercentOf(maxAnswer int) shape {
	pcts := []int{10, 20, 25, 50}
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		pct := numgen.Pick(src, pcts)
		a := numgen.Between(src, 1, maxAnswer)
		base := a * percentFactors[pct]
		return draft{
			prompt: fmt.Sprintf("What is %d%% of %d?", pct, base),
			answer: a,
			cat:    levelband.CatPercentages,
		}, nil
	}
}

// shapeRatioShare splits a total in ratio p:q and asks for the first share.
func shapeRatioShare(maxUnit int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		p := numgen.Between(src, 1, 5)
		q := numgen.Between(src, 1, 5)
		if p == q {
			q++
		}
		unit := numgen.Between(src, 2, maxUnit)
		total := (p + q) * unit
		return draft{
			prompt: fmt.Sprintf("Share %d sweets in the ratio %d:%d. How many are in the first share?", total, p, q),
			answer: p * unit,
			cat:    levelband.CatFractions,
		}, nil
	}
}

// shapeAverage builds three numbers symmetric around the mean so the
// average is exact.
func shapeAverage(maxAvg int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		avg := numgen.Between(src, 2, maxAvg)
		off := numgen.Between(src, 1, avg-1)
		a, b, c := avg-off, avg, avg+off
		return draft{
			prompt: fmt.Sprintf("What is the average of %d, %d and %d?", a, b, c),
			answer: avg,
			cat:    levelband.CatDivision,
		}, nil
	}
}

// intPow computes base**exp for small non-negative exponents.
func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// shapeSquare asks for n squared.
func shapeSquare(maxRoot int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 2, maxRoot)
		return draft{
			prompt: fmt.Sprintf("What is %d squared?", n),
			answer: n * n,
			cat:    levelband.CatPowers,
		}, nil
	}
}

// shapeCube asks for n cubed.
func shapeCube(maxRoot int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 2, maxRoot)
		return draft{
			prompt: fmt.Sprintf("What is %d cubed?", n),
			answer: n * n * n,
			cat:    levelband.CatPowers,
		}, nil
	}
}

// shapePower asks for base**exp with the answer capped at maxAnswer.
func shapePower(bases []int, maxAnswer int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		b := numgen.Pick(src, bases)
		exp := 2
		for intPow(b, exp+1) <= maxAnswer && exp < 10 {
			exp++
		}
		e := numgen.Between(src, 2, exp)
		return draft{
			prompt: fmt.Sprintf("What is %d to the power of %d?", b, e),
			answer: intPow(b, e),
			cat:    levelband.CatPowers,
		}, nil
	}
}

// shapeFactorial asks how many ways n people can stand in a line.
func shapeFactorial(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 3, maxN)
		f := 1
		for i := 2; i <= n; i++ {
			f *= i
		}
		return draft{
			prompt: fmt.Sprintf("In how many different orders can %d people stand in a line?", n),
			answer: f,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}

// shapePermutations asks how many ways r of n people can fill a line,
// the falling product n x (n-1) x ... over r terms.
func shapePermutations(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 4, maxN)
		rMax := 4
		if n-1 < rMax {
			rMax = n - 1
		}
		r := numgen.Between(src, 2, rMax)
		p := 1
		for i := 0; i < r; i++ {
			p *= n - i
		}
		return draft{
			prompt: fmt.Sprintf("In how many ways can %d of %d people line up for a photo?", r, n),
			answer: p,
			cat:    levelband.CatMultiplication,
		}, nil
	}
}
