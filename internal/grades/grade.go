package grades

import "fmt"

// Grade identifies one of the 15 curriculum grades.
type Grade string

const (
	K1 Grade = "K1"
	K2 Grade = "K2"
	K3 Grade = "K3"
	P1 Grade = "P1"
	P2 Grade = "P2"
	P3 Grade = "P3"
	P4 Grade = "P4"
	P5 Grade = "P5"
	P6 Grade = "P6"
	M1 Grade = "M1"
	M2 Grade = "M2"
	M3 Grade = "M3"
	M4 Grade = "M4"
	M5 Grade = "M5"
	M6 Grade = "M6"
)

// Category groups grades into the three school stages.
type Category string

const (
	CategoryKindergarten Category = "kindergarten"
	CategoryElementary   Category = "elementary"
	CategorySecondary    Category = "secondary"
)

// All returns every grade in difficulty order.
func All() []Grade {
	return []Grade{K1, K2, K3, P1, P2, P3, P4, P5, P6, M1, M2, M3, M4, M5, M6}
}

// Valid reports whether g is a recognized grade tag.
func Valid(g Grade) bool {
	switch g {
	case K1, K2, K3, P1, P2, P3, P4, P5, P6, M1, M2, M3, M4, M5, M6:
		return true
	}
	return false
}

// Parse converts a string into a Grade, failing on unknown tags.
func Parse(s string) (Grade, error) {
	g := Grade(s)
	if !Valid(g) {
		return "", fmt.Errorf("unknown grade %q", s)
	}
	return g, nil
}

// CategoryOf returns the school stage for a grade.
// Unknown grades map to elementary, the safe middle ground.
func CategoryOf(g Grade) Category {
	switch g {
	case K1, K2, K3:
		return CategoryKindergarten
	case P1, P2, P3, P4, P5, P6:
		return CategoryElementary
	case M1, M2, M3, M4, M5, M6:
		return CategorySecondary
	default:
		return CategoryElementary
	}
}

// DisplayName returns a human-readable label for a grade. Unrecognized
// tags come back unchanged rather than forced into a category label.
func DisplayName(g Grade) string {
	if !Valid(g) {
		return string(g)
	}
	switch CategoryOf(g) {
	case CategoryKindergarten:
		return "Kindergarten " + string(g[1:])
	case CategorySecondary:
		return "Secondary " + string(g[1:])
	default:
		return "Primary " + string(g[1:])
	}
}

// Next returns the grade after g in difficulty order, and false when g is
// the last grade (M6) or unrecognized. Grade advancement itself happens in
// the profile store when an increase lands at level 100.
func Next(g Grade) (Grade, bool) {
	all := All()
	for i, cur := range all {
		if cur == g && i+1 < len(all) {
			return all[i+1], true
		}
	}
	return "", false
}
