// Code generated by ent, DO NOT EDIT.

package expevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldSessionID, v))
}

// Base applies equality check predicate on the "base" field. It's identical to BaseEQ.
func Base(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldBase, v))
}

// CompletionBonus applies equality check predicate on the "completion_bonus" field. It's identical to CompletionBonusEQ.
func CompletionBonus(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldCompletionBonus, v))
}

// FirstDailyBonus applies equality check predicate on the "first_daily_bonus" field. It's identical to FirstDailyBonusEQ.
func FirstDailyBonus(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldFirstDailyBonus, v))
}

// StreakBonus applies equality check predicate on the "streak_bonus" field. It's identical to StreakBonusEQ.
func StreakBonus(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldStreakBonus, v))
}

// RepeatPenalty applies equality check predicate on the "repeat_penalty" field. It's identical to RepeatPenaltyEQ.
func RepeatPenalty(v bool) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldRepeatPenalty, v))
}

// Boost applies equality check predicate on the "boost" field. It's identical to BoostEQ.
func Boost(v float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldBoost, v))
}

// Awarded applies equality check predicate on the "awarded" field. It's identical to AwardedEQ.
func Awarded(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldAwarded, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// BaseEQ applies the EQ predicate on the "base" field.
func BaseEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldBase, v))
}

// BaseNEQ applies the NEQ predicate on the "base" field.
func BaseNEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldBase, v))
}

// BaseIn applies the In predicate on the "base" field.
func BaseIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldBase, vs...))
}

// BaseNotIn applies the NotIn predicate on the "base" field.
func BaseNotIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldBase, vs...))
}

// BaseGT applies the GT predicate on the "base" field.
func BaseGT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldBase, v))
}

// BaseGTE applies the GTE predicate on the "base" field.
func BaseGTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldBase, v))
}

// BaseLT applies the LT predicate on the "base" field.
func BaseLT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldBase, v))
}

// BaseLTE applies the LTE predicate on the "base" field.
func BaseLTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldBase, v))
}

// CompletionBonusEQ applies the EQ predicate on the "completion_bonus" field.
func CompletionBonusEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldCompletionBonus, v))
}

// CompletionBonusNEQ applies the NEQ predicate on the "completion_bonus" field.
func CompletionBonusNEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldCompletionBonus, v))
}

// CompletionBonusIn applies the In predicate on the "completion_bonus" field.
func CompletionBonusIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldCompletionBonus, vs...))
}

// CompletionBonusNotIn applies the NotIn predicate on the "completion_bonus" field.
func CompletionBonusNotIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldCompletionBonus, vs...))
}

// CompletionBonusGT applies the GT predicate on the "completion_bonus" field.
func CompletionBonusGT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldCompletionBonus, v))
}

// CompletionBonusGTE applies the GTE predicate on the "completion_bonus" field.
func CompletionBonusGTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldCompletionBonus, v))
}

// CompletionBonusLT applies the LT predicate on the "completion_bonus" field.
func CompletionBonusLT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldCompletionBonus, v))
}

// CompletionBonusLTE applies the LTE predicate on the "completion_bonus" field.
func CompletionBonusLTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldCompletionBonus, v))
}

// FirstDailyBonusEQ applies the EQ predicate on the "first_daily_bonus" field.
func FirstDailyBonusEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldFirstDailyBonus, v))
}

// FirstDailyBonusNEQ applies the NEQ predicate on the "first_daily_bonus" field.
func FirstDailyBonusNEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldFirstDailyBonus, v))
}

// FirstDailyBonusIn applies the In predicate on the "first_daily_bonus" field.
func FirstDailyBonusIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldFirstDailyBonus, vs...))
}

// FirstDailyBonusNotIn applies the NotIn predicate on the "first_daily_bonus" field.
func FirstDailyBonusNotIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldFirstDailyBonus, vs...))
}

// FirstDailyBonusGT applies the GT predicate on the "first_daily_bonus" field.
func FirstDailyBonusGT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldFirstDailyBonus, v))
}

// FirstDailyBonusGTE applies the GTE predicate on the "first_daily_bonus" field.
func FirstDailyBonusGTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldFirstDailyBonus, v))
}

// FirstDailyBonusLT applies the LT predicate on the "first_daily_bonus" field.
func FirstDailyBonusLT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldFirstDailyBonus, v))
}

// FirstDailyBonusLTE applies the LTE predicate on the "first_daily_bonus" field.
func FirstDailyBonusLTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldFirstDailyBonus, v))
}

// StreakBonusEQ applies the EQ predicate on the "streak_bonus" field.
func StreakBonusEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldStreakBonus, v))
}

// StreakBonusNEQ applies the NEQ predicate on the "streak_bonus" field.
func StreakBonusNEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldStreakBonus, v))
}

// StreakBonusIn applies the In predicate on the "streak_bonus" field.
func StreakBonusIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldStreakBonus, vs...))
}

// StreakBonusNotIn applies the NotIn predicate on the "streak_bonus" field.
func StreakBonusNotIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldStreakBonus, vs...))
}

// StreakBonusGT applies the GT predicate on the "streak_bonus" field.
func StreakBonusGT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldStreakBonus, v))
}

// StreakBonusGTE applies the GTE predicate on the "streak_bonus" field.
func StreakBonusGTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldStreakBonus, v))
}

// StreakBonusLT applies the LT predicate on the "streak_bonus" field.
func StreakBonusLT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldStreakBonus, v))
}

// StreakBonusLTE applies the LTE predicate on the "streak_bonus" field.
func StreakBonusLTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldStreakBonus, v))
}

// RepeatPenaltyEQ applies the EQ predicate on the "repeat_penalty" field.
func RepeatPenaltyEQ(v bool) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldRepeatPenalty, v))
}

// RepeatPenaltyNEQ applies the NEQ predicate on the "repeat_penalty" field.
func RepeatPenaltyNEQ(v bool) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldRepeatPenalty, v))
}

// BoostEQ applies the EQ predicate on the "boost" field.
func BoostEQ(v float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldBoost, v))
}

// BoostNEQ applies the NEQ predicate on the "boost" field.
func BoostNEQ(v float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldBoost, v))
}

// BoostIn applies the In predicate on the "boost" field.
func BoostIn(vs ...float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldBoost, vs...))
}

// BoostNotIn applies the NotIn predicate on the "boost" field.
func BoostNotIn(vs ...float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldBoost, vs...))
}

// BoostGT applies the GT predicate on the "boost" field.
func BoostGT(v float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldBoost, v))
}

// BoostGTE applies the GTE predicate on the "boost" field.
func BoostGTE(v float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldBoost, v))
}

// BoostLT applies the LT predicate on the "boost" field.
func BoostLT(v float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldBoost, v))
}

// BoostLTE applies the LTE predicate on the "boost" field.
func BoostLTE(v float64) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldBoost, v))
}

// AwardedEQ applies the EQ predicate on the "awarded" field.
func AwardedEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldEQ(FieldAwarded, v))
}

// AwardedNEQ applies the NEQ predicate on the "awarded" field.
func AwardedNEQ(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNEQ(FieldAwarded, v))
}

// AwardedIn applies the In predicate on the "awarded" field.
func AwardedIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldIn(FieldAwarded, vs...))
}

// AwardedNotIn applies the NotIn predicate on the "awarded" field.
func AwardedNotIn(vs ...int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldNotIn(FieldAwarded, vs...))
}

// AwardedGT applies the GT predicate on the "awarded" field.
func AwardedGT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGT(FieldAwarded, v))
}

// AwardedGTE applies the GTE predicate on the "awarded" field.
func AwardedGTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldGTE(FieldAwarded, v))
}

// AwardedLT applies the LT predicate on the "awarded" field.
func AwardedLT(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLT(FieldAwarded, v))
}

// AwardedLTE applies the LTE predicate on the "awarded" field.
func AwardedLTE(v int) predicate.ExpEvent {
	return predicate.ExpEvent(sql.FieldLTE(FieldAwarded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExpEvent) predicate.ExpEvent {
	return predicate.ExpEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExpEvent) predicate.ExpEvent {
	return predicate.ExpEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExpEvent) predicate.ExpEvent {
	return predicate.ExpEvent(sql.NotPredicates(p))
}
