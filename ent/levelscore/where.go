// Code generated by ent, DO NOT EDIT.

package levelscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLTE(FieldID, id))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldGrade, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldLevel, v))
}

// HighScore applies equality check predicate on the "high_score" field. It's identical to HighScoreEQ.
func HighScore(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldHighScore, v))
}

// PlayCount applies equality check predicate on the "play_count" field. It's identical to PlayCountEQ.
func PlayCount(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldPlayCount, v))
}

// LastPlayedAt applies equality check predicate on the "last_played_at" field. It's identical to LastPlayedAtEQ.
func LastPlayedAt(v time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldLastPlayedAt, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldContainsFold(FieldGrade, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLTE(FieldLevel, v))
}

// HighScoreEQ applies the EQ predicate on the "high_score" field.
func HighScoreEQ(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldHighScore, v))
}

// HighScoreNEQ applies the NEQ predicate on the "high_score" field.
func HighScoreNEQ(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNEQ(FieldHighScore, v))
}

// HighScoreIn applies the In predicate on the "high_score" field.
func HighScoreIn(vs ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldIn(FieldHighScore, vs...))
}

// HighScoreNotIn applies the NotIn predicate on the "high_score" field.
func HighScoreNotIn(vs ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNotIn(FieldHighScore, vs...))
}

// HighScoreGT applies the GT predicate on the "high_score" field.
func HighScoreGT(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGT(FieldHighScore, v))
}

// HighScoreGTE applies the GTE predicate on the "high_score" field.
func HighScoreGTE(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGTE(FieldHighScore, v))
}

// HighScoreLT applies the LT predicate on the "high_score" field.
func HighScoreLT(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLT(FieldHighScore, v))
}

// HighScoreLTE applies the LTE predicate on the "high_score" field.
func HighScoreLTE(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLTE(FieldHighScore, v))
}

// PlayCountEQ applies the EQ predicate on the "play_count" field.
func PlayCountEQ(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldPlayCount, v))
}

// PlayCountNEQ applies the NEQ predicate on the "play_count" field.
func PlayCountNEQ(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNEQ(FieldPlayCount, v))
}

// PlayCountIn applies the In predicate on the "play_count" field.
func PlayCountIn(vs ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldIn(FieldPlayCount, vs...))
}

// PlayCountNotIn applies the NotIn predicate on the "play_count" field.
func PlayCountNotIn(vs ...int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNotIn(FieldPlayCount, vs...))
}

// PlayCountGT applies the GT predicate on the "play_count" field.
func PlayCountGT(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGT(FieldPlayCount, v))
}

// PlayCountGTE applies the GTE predicate on the "play_count" field.
func PlayCountGTE(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGTE(FieldPlayCount, v))
}

// PlayCountLT applies the LT predicate on the "play_count" field.
func PlayCountLT(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLT(FieldPlayCount, v))
}

// PlayCountLTE applies the LTE predicate on the "play_count" field.
func PlayCountLTE(v int) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLTE(FieldPlayCount, v))
}

// LastPlayedAtEQ applies the EQ predicate on the "last_played_at" field.
func LastPlayedAtEQ(v time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldEQ(FieldLastPlayedAt, v))
}

// LastPlayedAtNEQ applies the NEQ predicate on the "last_played_at" field.
func LastPlayedAtNEQ(v time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNEQ(FieldLastPlayedAt, v))
}

// LastPlayedAtIn applies the In predicate on the "last_played_at" field.
func LastPlayedAtIn(vs ...time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldIn(FieldLastPlayedAt, vs...))
}

// LastPlayedAtNotIn applies the NotIn predicate on the "last_played_at" field.
func LastPlayedAtNotIn(vs ...time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldNotIn(FieldLastPlayedAt, vs...))
}

// LastPlayedAtGT applies the GT predicate on the "last_played_at" field.
func LastPlayedAtGT(v time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGT(FieldLastPlayedAt, v))
}

// LastPlayedAtGTE applies the GTE predicate on the "last_played_at" field.
func LastPlayedAtGTE(v time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldGTE(FieldLastPlayedAt, v))
}

// LastPlayedAtLT applies the LT predicate on the "last_played_at" field.
func LastPlayedAtLT(v time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLT(FieldLastPlayedAt, v))
}

// LastPlayedAtLTE applies the LTE predicate on the "last_played_at" field.
func LastPlayedAtLTE(v time.Time) predicate.LevelScore {
	return predicate.LevelScore(sql.FieldLTE(FieldLastPlayedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LevelScore) predicate.LevelScore {
	return predicate.LevelScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LevelScore) predicate.LevelScore {
	return predicate.LevelScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LevelScore) predicate.LevelScore {
	return predicate.LevelScore(sql.NotPredicates(p))
}
