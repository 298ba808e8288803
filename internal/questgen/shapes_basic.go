package questgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// Counting, comparison, and addition/subtraction shapes. These carry the
// kindergarten and early-primary grades; operand constraints (no carrying,
// no borrowing) are enforced by construction, never by rejection loops.

// fmtOperand wraps negative operands in parentheses so prompts read
// "7 + (-3)" rather than "7 + -3".
func fmtOperand(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return fmt.Sprintf("%d", n)
}

// shapeCount asks the player to count a row of dots.
func shapeCount(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 1, maxN)
		dots := strings.TrimSpace(strings.Repeat("* ", n))
		return draft{
			prompt: "How many stars?\n" + dots,
			answer: n,
			cat:    levelband.CatCounting,
			spread: 2,
		}, nil
	}
}

// shapeCompareBigger asks which of two distinct numbers is bigger.
func shapeCompareBigger(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 1, maxN)
		b := numgen.Between(src, 1, maxN)
		if a == b {
			b = a%maxN + 1
		}
		bigger, smaller := a, b
		if b > a {
			bigger, smaller = b, a
		}
		return draft{
			prompt: fmt.Sprintf("Which number is bigger: %d or %d?", a, b),
			answer: bigger,
			cat:    levelband.CatComparison,
			spread: 3,
			// The rejected operand is the one distractor the player
			// actually saw.
			seeds: []int{smaller},
		}, nil
	}
}

// shapeCompareSmaller asks which of two distinct numbers is smaller.
func shapeCompareSmaller(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 1, maxN)
		b := numgen.Between(src, 1, maxN)
		if a == b {
			b = a%maxN + 1
		}
		smaller, bigger := a, b
		if b < a {
			smaller, bigger = b, a
		}
		return draft{
			prompt: fmt.Sprintf("Which number is smaller: %d or %d?", a, b),
			answer: smaller,
			cat:    levelband.CatComparison,
			spread: 3,
			seeds:  []int{bigger},
		}, nil
	}
}

// shapeAfter asks for the number right after n.
func shapeAfter(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 1, maxN-1)
		return draft{
			prompt: fmt.Sprintf("What number comes right after %d?", n),
			answer: n + 1,
			cat:    levelband.CatCounting,
			spread: 2,
		}, nil
	}
}

// shapeBefore asks for the number just before n.
func shapeBefore(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 2, maxN)
		return draft{
			prompt: fmt.Sprintf("What number comes just before %d?", n),
			answer: n - 1,
			cat:    levelband.CatCounting,
			spread: 2,
		}, nil
	}
}

// shapeAddWithin samples a + b with the sum capped at maxSum.
func shapeAddWithin(maxSum int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 1, maxSum-1)
		b := numgen.Between(src, 1, maxSum-a)
		return draft{
			prompt: fmt.Sprintf("What is %d + %d?", a, b),
			answer: a + b,
			cat:    levelband.CatAddition,
		}, nil
	}
}

// shapeSubWithin samples a - b with a > b, both within maxN.
func shapeSubWithin(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 2, maxN)
		b := numgen.Between(src, 1, a-1)
		return draft{
			prompt: fmt.Sprintf("What is %d - %d?", a, b),
			answer: a - b,
			cat:    levelband.CatSubtraction,
		}, nil
	}
}

// shapeTakeAway is subtraction in take-away wording for the youngest
// grades, same operand bounds as shapeSubWithin.
func shapeTakeAway(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 2, maxN)
		b := numgen.Between(src, 1, a-1)
		return draft{
			prompt: fmt.Sprintf("You have %d sweets and eat %d. How many are left?", a, b),
			answer: a - b,
			cat:    levelband.CatSubtraction,
		}, nil
	}
}

// shapeAddNoCarryTeens adds a teen number and a single digit so that the
// ones digits sum below 10 ("no carrying") and the total stays within 20.
func shapeAddNoCarryTeens() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 10, 18)
		maxB := 9 - a%10
		if 20-a < maxB {
			maxB = 20 - a
		}
		b := numgen.Between(src, 1, maxB)
		return draft{
			prompt: fmt.Sprintf("What is %d + %d?", a, b),
			answer: a + b,
			cat:    levelband.CatAddition,
		}, nil
	}
}

// shapeSubNoBorrowTeens subtracts a single digit no larger than the ones
// digit ("no borrowing") from a teen number.
func shapeSubNoBorrowTeens() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		// Ones digit must be at least 1 so a valid subtrahend exists.
		a := 10 + numgen.Between(src, 1, 9)
		b := numgen.Between(src, 1, a%10)
		return draft{
			prompt: fmt.Sprintf("What is %d - %d?", a, b),
			answer: a - b,
			cat:    levelband.CatSubtraction,
		}, nil
	}
}

// shapeAddCarry2d adds two two-digit numbers whose ones digits sum to 10
// or more, keeping the total below 100.
func shapeAddCarry2d() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		t1 := numgen.Between(src, 1, 7)
		t2 := numgen.Between(src, 1, 8-t1)
		o1 := numgen.Between(src, 1, 9)
		o2 := numgen.Between(src, 10-o1, 9)
		a := t1*10 + o1
		b := t2*10 + o2
		return draft{
			prompt: fmt.Sprintf("What is %d + %d?", a, b),
			answer: a + b,
			cat:    levelband.CatAddition,
		}, nil
	}
}

// shapeSub2dBorrow subtracts two-digit numbers where the minuend's ones
// digit is smaller, forcing a borrow.
func shapeSub2dBorrow() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		ta := numgen.Between(src, 2, 9)
		tb := numgen.Between(src, 1, ta-1)
		oa := numgen.Between(src, 0, 8)
		ob := numgen.Between(src, oa+1, 9)
		a := ta*10 + oa
		b := tb*10 + ob
		return draft{
			prompt: fmt.Sprintf("What is %d - %d?", a, b),
			answer: a - b,
			cat:    levelband.CatSubtraction,
		}, nil
	}
}

// shapeAddNoCarry2d adds two two-digit numbers whose ones digits sum
// below 10, so the column addition needs no carry.
func shapeAddNoCarry2d() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		t1 := numgen.Between(src, 1, 7)
		t2 := numgen.Between(src, 1, 8-t1)
		o1 := numgen.Between(src, 0, 9)
		o2 := numgen.Between(src, 0, 9-o1)
		a := t1*10 + o1
		b := t2*10 + o2
		return draft{
			prompt: fmt.Sprintf("What is %d + %d?", a, b),
			answer: a + b,
			cat:    levelband.CatAddition,
		}, nil
	}
}

// shapeSubNoBorrow2d subtracts two-digit numbers column by column, the
// minuend's ones digit at least as large as the subtrahend's.
func shapeSubNoBorrow2d() shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		ta := numgen.Between(src, 2, 9)
		tb := numgen.Between(src, 1, ta-1)
		oa := numgen.Between(src, 0, 9)
		ob := numgen.Between(src, 0, oa)
		a := ta*10 + oa
		b := tb*10 + ob
		return draft{
			prompt: fmt.Sprintf("What is %d - %d?", a, b),
			answer: a - b,
			cat:    levelband.CatSubtraction,
		}, nil
	}
}

// shapeAddRange adds two numbers sampled from [lo, hi].
func shapeAddRange(lo, hi int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, lo, hi)
		b := numgen.Between(src, lo, hi)
		return draft{
			prompt: fmt.Sprintf("What is %d + %d?", a, b),
			answer: a + b,
			cat:    levelband.CatAddition,
		}, nil
	}
}

// shapeSubRange subtracts two numbers from [lo, hi], larger first.
func shapeSubRange(lo, hi int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, lo, hi)
		b := numgen.Between(src, lo, hi)
		if b > a {
			a, b = b, a
		}
		return draft{
			prompt: fmt.Sprintf("What is %d - %d?", a, b),
			answer: a - b,
			cat:    levelband.CatSubtraction,
		}, nil
	}
}

// shapeMissingAddend asks for the blank in "? + a = sum".
func shapeMissingAddend(maxSum int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		sum := numgen.Between(src, 3, maxSum)
		a := numgen.Between(src, 1, sum-1)
		return draft{
			prompt: fmt.Sprintf("? + %d = %d. What is the missing number?", a, sum),
			answer: sum - a,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeMissingSubtrahend asks for the blank in "a - ? = diff".
func shapeMissingSubtrahend(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 3, maxN)
		diff := numgen.Between(src, 1, a-1)
		return draft{
			prompt: fmt.Sprintf("%d - ? = %d. What is the missing number?", a, diff),
			answer: a - diff,
			cat:    levelband.CatAlgebra,
		}, nil
	}
}

// shapeDouble asks for double a number.
func shapeDouble(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		n := numgen.Between(src, 1, maxN/2)
		return draft{
			prompt: fmt.Sprintf("What is double %d?", n),
			answer: 2 * n,
			cat:    levelband.CatAddition,
		}, nil
	}
}

// shapeHalf asks for half of an even number.
func shapeHalf(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		h := numgen.Between(src, 1, maxN/2)
		return draft{
			prompt: fmt.Sprintf("What is half of %d?", 2*h),
			answer: h,
			cat:    levelband.CatDivision,
		}, nil
	}
}
