// Code generated by ent, DO NOT EDIT.

package levelscore

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the levelscore type in the database.
	Label = "level_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldHighScore holds the string denoting the high_score field in the database.
	FieldHighScore = "high_score"
	// FieldPlayCount holds the string denoting the play_count field in the database.
	FieldPlayCount = "play_count"
	// FieldLastPlayedAt holds the string denoting the last_played_at field in the database.
	FieldLastPlayedAt = "last_played_at"
	// Table holds the table name of the levelscore in the database.
	Table = "level_scores"
)

// Columns holds all SQL columns for levelscore fields.
var Columns = []string{
	FieldID,
	FieldGrade,
	FieldLevel,
	FieldHighScore,
	FieldPlayCount,
	FieldLastPlayedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
	// DefaultHighScore holds the default value on creation for the "high_score" field.
	DefaultHighScore int
	// DefaultPlayCount holds the default value on creation for the "play_count" field.
	DefaultPlayCount int
)

// OrderOption defines the ordering options for the LevelScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByHighScore orders the results by the high_score field.
func ByHighScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighScore, opts...).ToFunc()
}

// ByPlayCount orders the results by the play_count field.
func ByPlayCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayCount, opts...).ToFunc()
}

// ByLastPlayedAt orders the results by the last_played_at field.
func ByLastPlayedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPlayedAt, opts...).ToFunc()
}
