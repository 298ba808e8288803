// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/expevent"
)

// ExpEvent is the model entity for the ExpEvent schema.
type ExpEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Base holds the value of the "base" field.
	Base int `json:"base,omitempty"`
	// CompletionBonus holds the value of the "completion_bonus" field.
	CompletionBonus int `json:"completion_bonus,omitempty"`
	// FirstDailyBonus holds the value of the "first_daily_bonus" field.
	FirstDailyBonus int `json:"first_daily_bonus,omitempty"`
	// StreakBonus holds the value of the "streak_bonus" field.
	StreakBonus int `json:"streak_bonus,omitempty"`
	// RepeatPenalty holds the value of the "repeat_penalty" field.
	RepeatPenalty bool `json:"repeat_penalty,omitempty"`
	// Boost holds the value of the "boost" field.
	Boost float64 `json:"boost,omitempty"`
	// Final EXP credited after the boost multiplier
	Awarded      int `json:"awarded,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExpEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case expevent.FieldRepeatPenalty:
			values[i] = new(sql.NullBool)
		case expevent.FieldBoost:
			values[i] = new(sql.NullFloat64)
		case expevent.FieldID, expevent.FieldSequence, expevent.FieldBase, expevent.FieldCompletionBonus, expevent.FieldFirstDailyBonus, expevent.FieldStreakBonus, expevent.FieldAwarded:
			values[i] = new(sql.NullInt64)
		case expevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case expevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExpEvent fields.
func (_m *ExpEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case expevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case expevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case expevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case expevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case expevent.FieldBase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field base", values[i])
			} else if value.Valid {
				_m.Base = int(value.Int64)
			}
		case expevent.FieldCompletionBonus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_bonus", values[i])
			} else if value.Valid {
				_m.CompletionBonus = int(value.Int64)
			}
		case expevent.FieldFirstDailyBonus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_daily_bonus", values[i])
			} else if value.Valid {
				_m.FirstDailyBonus = int(value.Int64)
			}
		case expevent.FieldStreakBonus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_bonus", values[i])
			} else if value.Valid {
				_m.StreakBonus = int(value.Int64)
			}
		case expevent.FieldRepeatPenalty:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field repeat_penalty", values[i])
			} else if value.Valid {
				_m.RepeatPenalty = value.Bool
			}
		case expevent.FieldBoost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field boost", values[i])
			} else if value.Valid {
				_m.Boost = value.Float64
			}
		case expevent.FieldAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field awarded", values[i])
			} else if value.Valid {
				_m.Awarded = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExpEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExpEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExpEvent.
// Note that you need to call ExpEvent.Unwrap() before calling this method if this ExpEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExpEvent) Update() *ExpEventUpdateOne {
	return NewExpEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExpEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExpEvent) Unwrap() *ExpEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExpEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExpEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExpEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("base=")
	builder.WriteString(fmt.Sprintf("%v", _m.Base))
	builder.WriteString(", ")
	builder.WriteString("completion_bonus=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionBonus))
	builder.WriteString(", ")
	builder.WriteString("first_daily_bonus=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstDailyBonus))
	builder.WriteString(", ")
	builder.WriteString("streak_bonus=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakBonus))
	builder.WriteString(", ")
	builder.WriteString("repeat_penalty=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepeatPenalty))
	builder.WriteString(", ")
	builder.WriteString("boost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Boost))
	builder.WriteString(", ")
	builder.WriteString("awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Awarded))
	builder.WriteByte(')')
	return builder.String()
}

// ExpEvents is a parsable slice of ExpEvent.
type ExpEvents []*ExpEvent
