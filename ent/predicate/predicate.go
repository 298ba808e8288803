// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExpEvent is the predicate function for expevent builders.
type ExpEvent func(*sql.Selector)

// LevelScore is the predicate function for levelscore builders.
type LevelScore func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
