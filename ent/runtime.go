// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mentorlabs/mentor/ent/answerevent"
	"github.com/mentorlabs/mentor/ent/chatevent"
	"github.com/mentorlabs/mentor/ent/llmrequestevent"
	"github.com/mentorlabs/mentor/ent/schema"
	"github.com/mentorlabs/mentor/ent/sessionevent"
	"github.com/mentorlabs/mentor/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[2].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[3].Descriptor()
	// answerevent.ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	answerevent.ExpectedAnswerValidator = answereventDescExpectedAnswer.Validators[0].(func(string) error)
	// answereventDescGivenAnswer is the schema descriptor for given_answer field.
	answereventDescGivenAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultGivenAnswer holds the default value on creation for the given_answer field.
	answerevent.DefaultGivenAnswer = answereventDescGivenAnswer.Default.(string)
	// answereventDescTimedOut is the schema descriptor for timed_out field.
	answereventDescTimedOut := answereventFields[6].Descriptor()
	// answerevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	answerevent.DefaultTimedOut = answereventDescTimedOut.Default.(bool)
	// answereventDescStreak is the schema descriptor for streak field.
	answereventDescStreak := answereventFields[8].Descriptor()
	// answerevent.DefaultStreak holds the default value on creation for the streak field.
	answerevent.DefaultStreak = answereventDescStreak.Default.(int)
	// answereventDescExperience is the schema descriptor for experience field.
	answereventDescExperience := answereventFields[9].Descriptor()
	// answerevent.DefaultExperience holds the default value on creation for the experience field.
	answerevent.DefaultExperience = answereventDescExperience.Default.(int)
	chateventMixin := schema.ChatEvent{}.Mixin()
	chateventMixinFields0 := chateventMixin[0].Fields()
	_ = chateventMixinFields0
	chateventFields := schema.ChatEvent{}.Fields()
	_ = chateventFields
	// chateventDescTimestamp is the schema descriptor for timestamp field.
	chateventDescTimestamp := chateventMixinFields0[1].Descriptor()
	// chatevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatevent.DefaultTimestamp = chateventDescTimestamp.Default.(func() time.Time)
	// chateventDescSessionID is the schema descriptor for session_id field.
	chateventDescSessionID := chateventFields[0].Descriptor()
	// chatevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatevent.SessionIDValidator = chateventDescSessionID.Validators[0].(func(string) error)
	// chateventDescRole is the schema descriptor for role field.
	chateventDescRole := chateventFields[1].Descriptor()
	// chatevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatevent.RoleValidator = chateventDescRole.Validators[0].(func(string) error)
	// chateventDescContent is the schema descriptor for content field.
	chateventDescContent := chateventFields[2].Descriptor()
	// chatevent.DefaultContent holds the default value on creation for the content field.
	chatevent.DefaultContent = chateventDescContent.Default.(string)
	// chateventDescOffline is the schema descriptor for offline field.
	chateventDescOffline := chateventFields[3].Descriptor()
	// chatevent.DefaultOffline holds the default value on creation for the offline field.
	chatevent.DefaultOffline = chateventDescOffline.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
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
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescExperienceEarned is the schema descriptor for experience_earned field.
	sessioneventDescExperienceEarned := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultExperienceEarned holds the default value on creation for the experience_earned field.
	sessionevent.DefaultExperienceEarned = sessioneventDescExperienceEarned.Default.(int)
	// sessioneventDescPeakLevel is the schema descriptor for peak_level field.
	sessioneventDescPeakLevel := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultPeakLevel holds the default value on creation for the peak_level field.
	sessionevent.DefaultPeakLevel = sessioneventDescPeakLevel.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
