// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExpEventsColumns holds the columns for the "exp_events" table.
	ExpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "base", Type: field.TypeInt},
		{Name: "completion_bonus", Type: field.TypeInt, Default: 0},
		{Name: "first_daily_bonus", Type: field.TypeInt, Default: 0},
		{Name: "streak_bonus", Type: field.TypeInt, Default: 0},
		{Name: "repeat_penalty", Type: field.TypeBool, Default: false},
		{Name: "boost", Type: field.TypeFloat64, Default: 1},
		{Name: "awarded", Type: field.TypeInt},
	}
	// ExpEventsTable holds the schema information for the "exp_events" table.
	ExpEventsTable = &schema.Table{
		Name:       "exp_events",
		Columns:    ExpEventsColumns,
		PrimaryKey: []*schema.Column{ExpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "expevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExpEventsColumns[1]},
			},
			{
				Name:    "expevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExpEventsColumns[2]},
			},
			{
				Name:    "expevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExpEventsColumns[3]},
			},
		},
	}
	// LevelScoresColumns holds the columns for the "level_scores" table.
	LevelScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "grade", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "high_score", Type: field.TypeInt, Default: 0},
		{Name: "play_count", Type: field.TypeInt, Default: 0},
		{Name: "last_played_at", Type: field.TypeTime},
	}
	// LevelScoresTable holds the schema information for the "level_scores" table.
	LevelScoresTable = &schema.Table{
		Name:       "level_scores",
		Columns:    LevelScoresColumns,
		PrimaryKey: []*schema.Column{LevelScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "levelscore_grade_level",
				Unique:  true,
				Columns: []*schema.Column{LevelScoresColumns[1], LevelScoresColumns[2]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "grade", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "experience", Type: field.TypeInt, Default: 0},
		{Name: "total_score", Type: field.TypeInt, Default: 0},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "last_played_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeInt},
		{Name: "direction", Type: field.TypeString},
		{Name: "applied_progression", Type: field.TypeBool, Default: false},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_grade_level",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExpEventsTable,
		LevelScoresTable,
		ProfilesTable,
		SessionEventsTable,
	}
)

func init() {
}
