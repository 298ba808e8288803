// Code generated by ent, DO NOT EDIT.

package expevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the expevent type in the database.
	Label = "exp_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldBase holds the string denoting the base field in the database.
	FieldBase = "base"
	// FieldCompletionBonus holds the string denoting the completion_bonus field in the database.
	FieldCompletionBonus = "completion_bonus"
	// FieldFirstDailyBonus holds the string denoting the first_daily_bonus field in the database.
	FieldFirstDailyBonus = "first_daily_bonus"
	// FieldStreakBonus holds the string denoting the streak_bonus field in the database.
	FieldStreakBonus = "streak_bonus"
	// FieldRepeatPenalty holds the string denoting the repeat_penalty field in the database.
	FieldRepeatPenalty = "repeat_penalty"
	// FieldBoost holds the string denoting the boost field in the database.
	FieldBoost = "boost"
	// FieldAwarded holds the string denoting the awarded field in the database.
	FieldAwarded = "awarded"
	// Table holds the table name of the expevent in the database.
	Table = "exp_events"
)

// Columns holds all SQL columns for expevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldBase,
	FieldCompletionBonus,
	FieldFirstDailyBonus,
	FieldStreakBonus,
	FieldRepeatPenalty,
	FieldBoost,
	FieldAwarded,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultCompletionBonus holds the default value on creation for the "completion_bonus" field.
	DefaultCompletionBonus int
	// DefaultFirstDailyBonus holds the default value on creation for the "first_daily_bonus" field.
	DefaultFirstDailyBonus int
	// DefaultStreakBonus holds the default value on creation for the "streak_bonus" field.
	DefaultStreakBonus int
	// DefaultRepeatPenalty holds the default value on creation for the "repeat_penalty" field.
	DefaultRepeatPenalty bool
	// DefaultBoost holds the default value on creation for the "boost" field.
	DefaultBoost float64
)

// OrderOption defines the ordering options for the ExpEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByBase orders the results by the base field.
func ByBase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBase, opts...).ToFunc()
}

// ByCompletionBonus orders the results by the completion_bonus field.
func ByCompletionBonus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionBonus, opts...).ToFunc()
}

// ByFirstDailyBonus orders the results by the first_daily_bonus field.
func ByFirstDailyBonus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDailyBonus, opts...).ToFunc()
}

// ByStreakBonus orders the results by the streak_bonus field.
func ByStreakBonus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakBonus, opts...).ToFunc()
}

// ByRepeatPenalty orders the results by the repeat_penalty field.
func ByRepeatPenalty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepeatPenalty, opts...).ToFunc()
}

// ByBoost orders the results by the boost field.
func ByBoost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoost, opts...).ToFunc()
}

// ByAwarded orders the results by the awarded field.
func ByAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwarded, opts...).ToFunc()
}
