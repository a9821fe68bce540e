// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/iqorum/ent/attemptevent"
	"github.com/abhisek/iqorum/ent/feedbackevent"
	"github.com/abhisek/iqorum/ent/llmrequestevent"
	"github.com/abhisek/iqorum/ent/profile"
	"github.com/abhisek/iqorum/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescAssessment is the schema descriptor for assessment field.
	attempteventDescAssessment := attempteventFields[1].Descriptor()
	// attemptevent.AssessmentValidator is a validator for the "assessment" field. It is called by the builders before save.
	attemptevent.AssessmentValidator = attempteventDescAssessment.Validators[0].(func(string) error)
	// attempteventDescAction is the schema descriptor for action field.
	attempteventDescAction := attempteventFields[2].Descriptor()
	// attemptevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	attemptevent.ActionValidator = attempteventDescAction.Validators[0].(func(string) error)
	// attempteventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	attempteventDescQuestionsAnswered := attempteventFields[3].Descriptor()
	// attemptevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	attemptevent.DefaultQuestionsAnswered = attempteventDescQuestionsAnswered.Default.(int)
	// attempteventDescCorrectAnswers is the schema descriptor for correct_answers field.
	attempteventDescCorrectAnswers := attempteventFields[4].Descriptor()
	// attemptevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	attemptevent.DefaultCorrectAnswers = attempteventDescCorrectAnswers.Default.(int)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[5].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	// attempteventDescResultLabel is the schema descriptor for result_label field.
	attempteventDescResultLabel := attempteventFields[6].Descriptor()
	// attemptevent.DefaultResultLabel holds the default value on creation for the result_label field.
	attemptevent.DefaultResultLabel = attempteventDescResultLabel.Default.(string)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[7].Descriptor()
	// attemptevent.DefaultScore holds the default value on creation for the score field.
	attemptevent.DefaultScore = attempteventDescScore.Default.(int)
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescMessage is the schema descriptor for message field.
	feedbackeventDescMessage := feedbackeventFields[0].Descriptor()
	// feedbackevent.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	feedbackevent.MessageValidator = feedbackeventDescMessage.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.DefaultModel holds the default value on creation for the model field.
	llmrequestevent.DefaultModel = llmrequesteventDescModel.Default.(string)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
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
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescKey is the schema descriptor for key field.
	profileDescKey := profileFields[0].Descriptor()
	// profile.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	profile.KeyValidator = profileDescKey.Validators[0].(func(string) error)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[2].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
