package grades

import "testing"

func TestAllCount(t *testing.T) {
	all := All()
	if len(all) != 15 {
		t.Fatalf("expected 15 grades, got %d", len(all))
	}
	for _, g := range all {
		if !Valid(g) {
			t.Errorf("grade %q from All() is not Valid", g)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		grade Grade
		want  Category
	}{
		{K1, CategoryKindergarten},
		{K3, CategoryKindergarten},
		{P1, CategoryElementary},
		{P6, CategoryElementary},
		{M1, CategorySecondary},
		{M6, CategorySecondary},
		{Grade("bogus"), CategoryElementary},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.grade); got != tt.want {
			t.Errorf("CategoryOf(%q) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	g, err := Parse("P2")
	if err != nil || g != P2 {
		t.Errorf("Parse(P2) = %q, %v", g, err)
	}
	if _, err := Parse("Z9"); err == nil {
		t.Error("Parse(Z9) should fail")
	}
}

func TestNext(t *testing.T) {
	next, ok := Next(K3)
	if !ok || next != P1 {
		t.Errorf("Next(K3) = %q, %v; want P1, true", next, ok)
	}
	if _, ok := Next(M6); ok {
		t.Error("Next(M6) should report no successor")
	}
	if _, ok := Next(Grade("bogus")); ok {
		t.Error("Next on unknown grade should report no successor")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		grade Grade
		want  string
	}{
		{K1, "Kindergarten 1"},
		{P4, "Primary 4"},
		{M6, "Secondary 6"},
		// Unrecognized tags, including ones too short to slice, pass
		// through untouched instead of panicking.
		{Grade(""), ""},
		{Grade("x"), "x"},
		{Grade("z9"), "z9"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.grade); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}
