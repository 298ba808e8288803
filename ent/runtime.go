// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathquest/ent/expevent"
	"github.com/abhisek/mathquest/ent/levelscore"
	"github.com/abhisek/mathquest/ent/profile"
	"github.com/abhisek/mathquest/ent/schema"
	"github.com/abhisek/mathquest/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	expeventMixin := schema.ExpEvent{}.Mixin()
	expeventMixinFields0 := expeventMixin[0].Fields()
	_ = expeventMixinFields0
	expeventFields := schema.ExpEvent{}.Fields()
	_ = expeventFields
	// expeventDescTimestamp is the schema descriptor for timestamp field.
	expeventDescTimestamp := expeventMixinFields0[1].Descriptor()
	// expevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	expevent.DefaultTimestamp = expeventDescTimestamp.Default.(func() time.Time)
	// expeventDescSessionID is the schema descriptor for session_id field.
	expeventDescSessionID := expeventFields[0].Descriptor()
	// expevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	expevent.SessionIDValidator = expeventDescSessionID.Validators[0].(func(string) error)
	// expeventDescCompletionBonus is the schema descriptor for completion_bonus field.
	expeventDescCompletionBonus := expeventFields[2].Descriptor()
	// expevent.DefaultCompletionBonus holds the default value on creation for the completion_bonus field.
	expevent.DefaultCompletionBonus = expeventDescCompletionBonus.Default.(int)
	// expeventDescFirstDailyBonus is the schema descriptor for first_daily_bonus field.
	expeventDescFirstDailyBonus := expeventFields[3].Descriptor()
	// expevent.DefaultFirstDailyBonus holds the default value on creation for the first_daily_bonus field.
	expevent.DefaultFirstDailyBonus = expeventDescFirstDailyBonus.Default.(int)
	// expeventDescStreakBonus is the schema descriptor for streak_bonus field.
	expeventDescStreakBonus := expeventFields[4].Descriptor()
	// expevent.DefaultStreakBonus holds the default value on creation for the streak_bonus field.
	expevent.DefaultStreakBonus = expeventDescStreakBonus.Default.(int)
	// expeventDescRepeatPenalty is the schema descriptor for repeat_penalty field.
	expeventDescRepeatPenalty := expeventFields[5].Descriptor()
	// expevent.DefaultRepeatPenalty holds the default value on creation for the repeat_penalty field.
	expevent.DefaultRepeatPenalty = expeventDescRepeatPenalty.Default.(bool)
	// expeventDescBoost is the schema descriptor for boost field.
	expeventDescBoost := expeventFields[6].Descriptor()
	// expevent.DefaultBoost holds the default value on creation for the boost field.
	expevent.DefaultBoost = expeventDescBoost.Default.(float64)
	levelscoreFields := schema.LevelScore{}.Fields()
	_ = levelscoreFields
	// levelscoreDescGrade is the schema descriptor for grade field.
	levelscoreDescGrade := levelscoreFields[0].Descriptor()
	// levelscore.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	levelscore.GradeValidator = levelscoreDescGrade.Validators[0].(func(string) error)
	// levelscoreDescLevel is the schema descriptor for level field.
	levelscoreDescLevel := levelscoreFields[1].Descriptor()
	// levelscore.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	levelscore.LevelValidator = func() func(int) error {
		validators := levelscoreDescLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(level int) error {
			for _, fn := range fns {
				if err := fn(level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// levelscoreDescHighScore is the schema descriptor for high_score field.
	levelscoreDescHighScore := levelscoreFields[2].Descriptor()
	// levelscore.DefaultHighScore holds the default value on creation for the high_score field.
	levelscore.DefaultHighScore = levelscoreDescHighScore.Default.(int)
	// levelscoreDescPlayCount is the schema descriptor for play_count field.
	levelscoreDescPlayCount := levelscoreFields[3].Descriptor()
	// levelscore.DefaultPlayCount holds the default value on creation for the play_count field.
	levelscore.DefaultPlayCount = levelscoreDescPlayCount.Default.(int)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescGrade is the schema descriptor for grade field.
	profileDescGrade := profileFields[0].Descriptor()
	// profile.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	profile.GradeValidator = profileDescGrade.Validators[0].(func(string) error)
	// profileDescLevel is the schema descriptor for level field.
	profileDescLevel := profileFields[1].Descriptor()
	// profile.DefaultLevel holds the default value on creation for the level field.
	profile.DefaultLevel = profileDescLevel.Default.(int)
	// profile.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	profile.LevelValidator = func() func(int) error {
		validators := profileDescLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(level int) error {
			for _, fn := range fns {
				if err := fn(level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescExperience is the schema descriptor for experience field.
	profileDescExperience := profileFields[2].Descriptor()
	// profile.DefaultExperience holds the default value on creation for the experience field.
	profile.DefaultExperience = profileDescExperience.Default.(int)
	// profileDescTotalScore is the schema descriptor for total_score field.
	profileDescTotalScore := profileFields[3].Descriptor()
	// profile.DefaultTotalScore holds the default value on creation for the total_score field.
	profile.DefaultTotalScore = profileDescTotalScore.Default.(int)
	// profileDescStreakDays is the schema descriptor for streak_days field.
	profileDescStreakDays := profileFields[4].Descriptor()
	// profile.DefaultStreakDays holds the default value on creation for the streak_days field.
	profile.DefaultStreakDays = profileDescStreakDays.Default.(int)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[6].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescGrade is the schema descriptor for grade field.
	sessioneventDescGrade := sessioneventFields[1].Descriptor()
	// sessionevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	sessionevent.GradeValidator = sessioneventDescGrade.Validators[0].(func(string) error)
	// sessioneventDescAppliedProgression is the schema descriptor for applied_progression field.
	sessioneventDescAppliedProgression := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultAppliedProgression holds the default value on creation for the applied_progression field.
	sessionevent.DefaultAppliedProgression = sessioneventDescAppliedProgression.Default.(bool)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
