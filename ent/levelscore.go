// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/levelscore"
)

// LevelScore is the model entity for the LevelScore schema.
type LevelScore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Level holds the value of the "level" field.
	Level int `json:"level,omitempty"`
	// HighScore holds the value of the "high_score" field.
	HighScore int `json:"high_score,omitempty"`
	// PlayCount holds the value of the "play_count" field.
	PlayCount int `json:"play_count,omitempty"`
	// LastPlayedAt holds the value of the "last_played_at" field.
	LastPlayedAt time.Time `json:"last_played_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LevelScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case levelscore.FieldID, levelscore.FieldLevel, levelscore.FieldHighScore, levelscore.FieldPlayCount:
			values[i] = new(sql.NullInt64)
		case levelscore.FieldGrade:
			values[i] = new(sql.NullString)
		case levelscore.FieldLastPlayedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LevelScore fields.
func (_m *LevelScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case levelscore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case levelscore.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case levelscore.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case levelscore.FieldHighScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_score", values[i])
			} else if value.Valid {
				_m.HighScore = int(value.Int64)
			}
		case levelscore.FieldPlayCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field play_count", values[i])
			} else if value.Valid {
				_m.PlayCount = int(value.Int64)
			}
		case levelscore.FieldLastPlayedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_played_at", values[i])
			} else if value.Valid {
				_m.LastPlayedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LevelScore.
// This includes values selected through modifiers, order, etc.
func (_m *LevelScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LevelScore.
// Note that you need to call LevelScore.Unwrap() before calling this method if this LevelScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LevelScore) Update() *LevelScoreUpdateOne {
	return NewLevelScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LevelScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LevelScore) Unwrap() *LevelScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LevelScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LevelScore) String() string {
	var builder strings.Builder
	builder.WriteString("LevelScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("high_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighScore))
	builder.WriteString(", ")
	builder.WriteString("play_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlayCount))
	builder.WriteString(", ")
	builder.WriteString("last_played_at=")
	builder.WriteString(_m.LastPlayedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LevelScores is a parsable slice of LevelScore.
type LevelScores []*LevelScore
