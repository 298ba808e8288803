package numgen

// Multiple-choice distractor generation.
//
// Choices is total: it always returns exactly count distinct values for any
// finite correct answer and any spread >= 1. When random sampling cannot
// fill the set (tiny spread relative to count), it falls back to a fixed
// offset ladder and then widens the sampling window until satisfied.
// Negative answers and negative distractors are fully supported; values are
// never clamped to non-negative.

// fixedOffsets is the deterministic fallback ladder applied when random
// sampling exhausts its attempt budget.
var fixedOffsets = []int{1, -1, 2, -2, 5, -5, 10, -10}

// Choices returns count distinct values including correct exactly once, in
// randomized order. Distractors are sampled as offsets within
// [-spread, spread] of the correct answer.
func Choices(src Source, correct, count, spread int) []int {
	return SeededChoices(src, correct, nil, count, spread)
}

// SeededChoices is Choices with mandatory distractors. Every seed distinct
// from the correct answer is placed in the set before random sampling
// fills the rest. Comparison questions use this to guarantee the losing
// operand appears among the options.
func SeededChoices(src Source, correct int, seeds []int, count, spread int) []int {
	if count < 1 {
		count = 1
	}
	if spread < 1 {
		spread = 1
	}

	seen := map[int]bool{correct: true}
	out := []int{correct}

	for _, v := range seeds {
		if len(out) == count {
			break
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	// Stage 1: random offsets within the window.
	budget := count * 20
	for attempts := 0; attempts < budget && len(out) < count; attempts++ {
		off := Between(src, -spread, spread)
		if off == 0 {
			continue
		}
		v := correct + off
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	// Stage 2: deterministic offset ladder, including the spread itself.
	if len(out) < count {
		ladder := append(append([]int{}, fixedOffsets...), spread, -spread)
		for _, off := range ladder {
			if len(out) == count {
				break
			}
			v := correct + off
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	// Stage 3: widen the window until the set fills. Doubling the spread
	// each round guarantees termination for any count.
	for len(out) < count {
		spread *= 2
		for attempts := 0; attempts < budget && len(out) < count; attempts++ {
			v := correct + Between(src, -spread, spread)
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	shuffle(src, out)
	return out
}

// shuffle randomizes order in place (Fisher-Yates).
func shuffle(src Source, vals []int) {
	for i := len(vals) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		vals[i], vals[j] = vals[j], vals[i]
	}
}
