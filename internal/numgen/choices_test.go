package numgen

import "testing"

func assertChoiceSet(t *testing.T, got []int, correct, count int) {
	t.Helper()
	if len(got) != count {
		t.Fatalf("got %d choices, want %d: %v", len(got), count, got)
	}
	seen := map[int]int{}
	for _, v := range got {
		seen[v]++
	}
	if len(seen) != count {
		t.Errorf("duplicate choices: %v", got)
	}
	if seen[correct] != 1 {
		t.Errorf("correct answer %d appears %d times in %v", correct, seen[correct], got)
	}
}

func TestChoicesBasic(t *testing.T) {
	src := New(1)
	for i := 0; i < 100; i++ {
		got := Choices(src, 42, 4, 10)
		assertChoiceSet(t, got, 42, 4)
	}
}

func TestChoicesTinySpread(t *testing.T) {
	// spread 1 gives only 3 candidate values in the window; stage 2 and 3
	// must still fill the set.
	src := New(2)
	for count := 2; count <= 10; count++ {
		got := Choices(src, 7, count, 1)
		assertChoiceSet(t, got, 7, count)
	}
}

func TestChoicesNegativeCorrect(t *testing.T) {
	src := New(3)
	got := Choices(src, -15, 4, 5)
	assertChoiceSet(t, got, -15, 4)

	// Negative distractors must survive: with correct -15 and spread 5,
	// every distractor is negative.
	for _, v := range got {
		if v >= 0 {
			t.Errorf("expected all negative choices around -15, got %v", got)
		}
	}
}

func TestSeededChoicesIncludesSeeds(t *testing.T) {
	src := New(5)
	for i := 0; i < 100; i++ {
		got := SeededChoices(src, 9, []int{3}, 4, 3)
		assertChoiceSet(t, got, 9, 4)
		found := false
		for _, v := range got {
			if v == 3 {
				found = true
			}
		}
		if !found {
			t.Fatalf("seed 3 missing from %v", got)
		}
	}

	// A seed equal to the correct answer is ignored, never duplicated.
	got := SeededChoices(src, 9, []int{9, 8}, 4, 3)
	assertChoiceSet(t, got, 9, 4)

	// More seeds than slots: count wins, extras are dropped.
	got = SeededChoices(src, 1, []int{2, 3, 4, 5, 6}, 4, 3)
	assertChoiceSet(t, got, 1, 4)
}

func TestChoicesZeroAndEdgeSpreads(t *testing.T) {
	src := New(4)
	// spread below 1 is promoted to 1 rather than looping forever.
	got := Choices(src, 0, 4, 0)
	assertChoiceSet(t, got, 0, 4)
}

func TestChoicesLargeCount(t *testing.T) {
	src := New(5)
	got := Choices(src, 1000, 10, 3)
	assertChoiceSet(t, got, 1000, 10)
}

func TestBetween(t *testing.T) {
	src := New(6)
	for i := 0; i < 200; i++ {
		v := Between(src, -5, 5)
		if v < -5 || v > 5 {
			t.Fatalf("Between(-5,5) = %d out of range", v)
		}
	}
	// Inverted bounds swap instead of panicking.
	if v := Between(src, 5, 5); v != 5 {
		t.Errorf("Between(5,5) = %d", v)
	}
	v := Between(src, 10, 1)
	if v < 1 || v > 10 {
		t.Errorf("Between(10,1) = %d out of range", v)
	}
}

func TestDeterministicSeed(t *testing.T) {
	a := Choices(New(99), 50, 4, 10)
	b := Choices(New(99), 50, 4, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different choices: %v vs %v", a, b)
		}
	}
}
