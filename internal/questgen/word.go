package questgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/levelband"
	"github.com/abhisek/mathquest/internal/numgen"
)

// Word problems are fixed templates with number substitution. No language
// generation happens here; the story strings never change shape.

var wordNames = []string{"Sam", "Maya", "Leo", "Aisha", "Ben", "Nina"}

var wordThings = []string{"apples", "marbles", "stickers", "shells", "coins", "cards"}

func pickName(src numgen.Source) string {
	return wordNames[src.IntN(len(wordNames))]
}

func pickThing(src numgen.Source) string {
	return wordThings[src.IntN(len(wordThings))]
}

// wordAdd: started with a, got b more.
func wordAdd(maxSum int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 1, maxSum-1)
		b := numgen.Between(src, 1, maxSum-a)
		thing := pickThing(src)
		return draft{
			prompt: fmt.Sprintf("%s has %d %s and finds %d more. How many %s are there now?",
				pickName(src), a, thing, b, thing),
			answer: a + b,
			cat:    levelband.CatWordProblem,
		}, nil
	}
}

// wordSub: started with a, gave away b.
func wordSub(maxN int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		a := numgen.Between(src, 2, maxN)
		b := numgen.Between(src, 1, a-1)
		return draft{
			prompt: fmt.Sprintf("%s has %d %s and gives %d away. How many are left?",
				pickName(src), a, pickThing(src), b),
			answer: a - b,
			cat:    levelband.CatWordProblem,
		}, nil
	}
}

// wordMul: k bags of n things.
func wordMul(maxBag, maxPer int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		k := numgen.Between(src, 2, maxBag)
		n := numgen.Between(src, 2, maxPer)
		return draft{
			prompt: fmt.Sprintf("%s has %d bags with %d %s in each. How many are there in total?",
				pickName(src), k, n, pickThing(src)),
			answer: k * n,
			cat:    levelband.CatWordProblem,
		}, nil
	}
}

// wordShare: n things shared among k friends, built to divide exactly.
func wordShare(maxEach, maxFriends int) shape {
	return func(src numgen.Source, _ int, _ *levelband.Band) (draft, error) {
		k := numgen.Between(src, 2, maxFriends)
		each := numgen.Between(src, 1, maxEach)
		return draft{
			prompt: fmt.Sprintf("%d %s are shared equally among %d friends. How many does each friend get?",
				k*each, pickThing(src), k),
			answer: each,
			cat:    levelband.CatWordProblem,
		}, nil
	}
}
