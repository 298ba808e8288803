package levelband

import (
	"testing"

	"github.com/abhisek/mathquest/internal/grades"
)

// Every grade's bands must tile [1,100] exactly: no gaps, no overlaps.
func TestBandsTileAllLevels(t *testing.T) {
	for _, g := range grades.All() {
		bands := Bands(g)
		if len(bands) == 0 {
			t.Errorf("grade %s has no bands", g)
			continue
		}
		if bands[0].MinLevel != 1 {
			t.Errorf("grade %s: first band starts at %d, want 1", g, bands[0].MinLevel)
		}
		if bands[len(bands)-1].MaxLevel != 100 {
			t.Errorf("grade %s: last band ends at %d, want 100", g, bands[len(bands)-1].MaxLevel)
		}
		for i := 1; i < len(bands); i++ {
			if bands[i].MinLevel != bands[i-1].MaxLevel+1 {
				t.Errorf("grade %s: band %d starts at %d, previous ends at %d",
					g, i, bands[i].MinLevel, bands[i-1].MaxLevel)
			}
		}
		for i, b := range bands {
			if b.MinLevel > b.MaxLevel {
				t.Errorf("grade %s: band %d has inverted range [%d,%d]", g, i, b.MinLevel, b.MaxLevel)
			}
			if b.Description == "" {
				t.Errorf("grade %s: band %d has no description", g, i)
			}
			if len(b.Categories) == 0 {
				t.Errorf("grade %s: band %d has no categories", g, i)
			}
		}
	}
}

func TestConfigCoversEveryLevel(t *testing.T) {
	for _, g := range grades.All() {
		for level := 1; level <= 100; level++ {
			b := Config(g, level)
			if b == nil {
				t.Fatalf("Config(%s, %d) = nil", g, level)
			}
			if !b.Contains(level) {
				t.Errorf("Config(%s, %d) returned band [%d,%d]", g, level, b.MinLevel, b.MaxLevel)
			}
		}
	}
}

func TestConfigUnknownGrade(t *testing.T) {
	if b := Config(grades.Grade("Z9"), 50); b != nil {
		t.Errorf("expected nil band for unknown grade, got %+v", b)
	}
}

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		grade grades.Grade
		want  int
	}{
		{grades.K1, 5},
		{grades.K3, 5},
		{grades.P1, 10},
		{grades.M6, 10},
		{grades.Grade("bogus"), DefaultQuestionCount},
	}
	for _, tt := range tests {
		if got := QuestionCount(tt.grade); got != tt.want {
			t.Errorf("QuestionCount(%q) = %d, want %d", tt.grade, got, tt.want)
		}
	}
}

func TestSpecAnchorBands(t *testing.T) {
	// P2 level 45 is the 2/5/10 multiplication-table band.
	b := Config(grades.P2, 45)
	if b == nil || !b.HasFeature("tables-2-5-10") {
		t.Fatalf("P2 level 45: want tables-2-5-10 band, got %+v", b)
	}

	// K1 level 5 is the counting-to-5 band.
	b = Config(grades.K1, 5)
	if b == nil || b.Numeric.Max != 5 {
		t.Fatalf("K1 level 5: want counting band with max 5, got %+v", b)
	}
}

// Numeric range magnitude must not shrink as levels increase.
func TestBandMagnitudeMonotonic(t *testing.T) {
	magnitude := func(r Range) int {
		m := r.Max
		if -r.Min > m {
			m = -r.Min
		}
		return m
	}
	for _, g := range grades.All() {
		bands := Bands(g)
		for i := 1; i < len(bands); i++ {
			if magnitude(bands[i].Numeric) < magnitude(bands[i-1].Numeric) {
				t.Errorf("grade %s: band %d magnitude %d < band %d magnitude %d",
					g, i, magnitude(bands[i].Numeric), i-1, magnitude(bands[i-1].Numeric))
			}
		}
	}
}
