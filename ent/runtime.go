// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mizutani/kotoba/ent/answerevent"
	"github.com/mizutani/kotoba/ent/assignment"
	"github.com/mizutani/kotoba/ent/llmrequestevent"
	"github.com/mizutani/kotoba/ent/reviewevent"
	"github.com/mizutani/kotoba/ent/schema"
	"github.com/mizutani/kotoba/ent/sessionevent"
	"github.com/mizutani/kotoba/ent/sessionitem"
	"github.com/mizutani/kotoba/ent/subject"
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
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescVerdict is the schema descriptor for verdict field.
	answereventDescVerdict := answereventFields[4].Descriptor()
	// answerevent.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	answerevent.VerdictValidator = answereventDescVerdict.Validators[0].(func(string) error)
	// answereventDescUndone is the schema descriptor for undone field.
	answereventDescUndone := answereventFields[5].Descriptor()
	// answerevent.DefaultUndone holds the default value on creation for the undone field.
	answerevent.DefaultUndone = answereventDescUndone.Default.(bool)
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescStage is the schema descriptor for stage field.
	assignmentDescStage := assignmentFields[1].Descriptor()
	// assignment.DefaultStage holds the default value on creation for the stage field.
	assignment.DefaultStage = assignmentDescStage.Default.(int)
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
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescIncorrectMeaning is the schema descriptor for incorrect_meaning field.
	revieweventDescIncorrectMeaning := revieweventFields[2].Descriptor()
	// reviewevent.DefaultIncorrectMeaning holds the default value on creation for the incorrect_meaning field.
	reviewevent.DefaultIncorrectMeaning = revieweventDescIncorrectMeaning.Default.(int)
	// revieweventDescIncorrectReading is the schema descriptor for incorrect_reading field.
	revieweventDescIncorrectReading := revieweventFields[3].Descriptor()
	// reviewevent.DefaultIncorrectReading holds the default value on creation for the incorrect_reading field.
	reviewevent.DefaultIncorrectReading = revieweventDescIncorrectReading.Default.(int)
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
	// sessioneventDescSessionType is the schema descriptor for session_type field.
	sessioneventDescSessionType := sessioneventFields[2].Descriptor()
	// sessionevent.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	sessionevent.SessionTypeValidator = sessioneventDescSessionType.Validators[0].(func(string) error)
	// sessioneventDescItemsTotal is the schema descriptor for items_total field.
	sessioneventDescItemsTotal := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultItemsTotal holds the default value on creation for the items_total field.
	sessionevent.DefaultItemsTotal = sessioneventDescItemsTotal.Default.(int)
	// sessioneventDescItemsCompleted is the schema descriptor for items_completed field.
	sessioneventDescItemsCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultItemsCompleted holds the default value on creation for the items_completed field.
	sessionevent.DefaultItemsCompleted = sessioneventDescItemsCompleted.Default.(int)
	// sessioneventDescItemsAbandoned is the schema descriptor for items_abandoned field.
	sessioneventDescItemsAbandoned := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultItemsAbandoned holds the default value on creation for the items_abandoned field.
	sessionevent.DefaultItemsAbandoned = sessioneventDescItemsAbandoned.Default.(int)
	// sessioneventDescIncorrectTotal is the schema descriptor for incorrect_total field.
	sessioneventDescIncorrectTotal := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultIncorrectTotal holds the default value on creation for the incorrect_total field.
	sessionevent.DefaultIncorrectTotal = sessioneventDescIncorrectTotal.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	sessionitemFields := schema.SessionItem{}.Fields()
	_ = sessionitemFields
	// sessionitemDescSessionID is the schema descriptor for session_id field.
	sessionitemDescSessionID := sessionitemFields[0].Descriptor()
	// sessionitem.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionitem.SessionIDValidator = sessionitemDescSessionID.Validators[0].(func(string) error)
	// sessionitemDescState is the schema descriptor for state field.
	sessionitemDescState := sessionitemFields[2].Descriptor()
	// sessionitem.DefaultState holds the default value on creation for the state field.
	sessionitem.DefaultState = sessionitemDescState.Default.(string)
	// sessionitemDescNumAnswers is the schema descriptor for num_answers field.
	sessionitemDescNumAnswers := sessionitemFields[7].Descriptor()
	// sessionitem.DefaultNumAnswers holds the default value on creation for the num_answers field.
	sessionitem.DefaultNumAnswers = sessionitemDescNumAnswers.Default.(int)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescKind is the schema descriptor for kind field.
	subjectDescKind := subjectFields[0].Descriptor()
	// subject.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	subject.KindValidator = subjectDescKind.Validators[0].(func(string) error)
	// subjectDescCharacters is the schema descriptor for characters field.
	subjectDescCharacters := subjectFields[1].Descriptor()
	// subject.CharactersValidator is a validator for the "characters" field. It is called by the builders before save.
	subject.CharactersValidator = subjectDescCharacters.Validators[0].(func(string) error)
	// subjectDescLevel is the schema descriptor for level field.
	subjectDescLevel := subjectFields[2].Descriptor()
	// subject.DefaultLevel holds the default value on creation for the level field.
	subject.DefaultLevel = subjectDescLevel.Default.(int)
}
