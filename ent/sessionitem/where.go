// Code generated by ent, DO NOT EDIT.

package sessionitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mizutani/kotoba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldSessionID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldSubjectID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldState, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldStage, v))
}

// NumAnswers applies equality check predicate on the "num_answers" field. It's identical to NumAnswersEQ.
func NumAnswers(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldNumAnswers, v))
}

// LastAnswer applies equality check predicate on the "last_answer" field. It's identical to LastAnswerEQ.
func LastAnswer(v time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldLastAnswer, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldContainsFold(FieldSessionID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v int64) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldSubjectID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldContainsFold(FieldState, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldStage, v))
}

// NumAnswersEQ applies the EQ predicate on the "num_answers" field.
func NumAnswersEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldNumAnswers, v))
}

// NumAnswersNEQ applies the NEQ predicate on the "num_answers" field.
func NumAnswersNEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldNumAnswers, v))
}

// NumAnswersIn applies the In predicate on the "num_answers" field.
func NumAnswersIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldNumAnswers, vs...))
}

// NumAnswersNotIn applies the NotIn predicate on the "num_answers" field.
func NumAnswersNotIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldNumAnswers, vs...))
}

// NumAnswersGT applies the GT predicate on the "num_answers" field.
func NumAnswersGT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldNumAnswers, v))
}

// NumAnswersGTE applies the GTE predicate on the "num_answers" field.
func NumAnswersGTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldNumAnswers, v))
}

// NumAnswersLT applies the LT predicate on the "num_answers" field.
func NumAnswersLT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldNumAnswers, v))
}

// NumAnswersLTE applies the LTE predicate on the "num_answers" field.
func NumAnswersLTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldNumAnswers, v))
}

// LastAnswerEQ applies the EQ predicate on the "last_answer" field.
func LastAnswerEQ(v time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldLastAnswer, v))
}

// LastAnswerNEQ applies the NEQ predicate on the "last_answer" field.
func LastAnswerNEQ(v time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldLastAnswer, v))
}

// LastAnswerIn applies the In predicate on the "last_answer" field.
func LastAnswerIn(vs ...time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldLastAnswer, vs...))
}

// LastAnswerNotIn applies the NotIn predicate on the "last_answer" field.
func LastAnswerNotIn(vs ...time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldLastAnswer, vs...))
}

// LastAnswerGT applies the GT predicate on the "last_answer" field.
func LastAnswerGT(v time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldLastAnswer, v))
}

// LastAnswerGTE applies the GTE predicate on the "last_answer" field.
func LastAnswerGTE(v time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldLastAnswer, v))
}

// LastAnswerLT applies the LT predicate on the "last_answer" field.
func LastAnswerLT(v time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldLastAnswer, v))
}

// LastAnswerLTE applies the LTE predicate on the "last_answer" field.
func LastAnswerLTE(v time.Time) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldLastAnswer, v))
}

// LastAnswerIsNil applies the IsNil predicate on the "last_answer" field.
func LastAnswerIsNil() predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIsNull(FieldLastAnswer))
}

// LastAnswerNotNil applies the NotNil predicate on the "last_answer" field.
func LastAnswerNotNil() predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotNull(FieldLastAnswer))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionItem) predicate.SessionItem {
	return predicate.SessionItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionItem) predicate.SessionItem {
	return predicate.SessionItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionItem) predicate.SessionItem {
	return predicate.SessionItem(sql.NotPredicates(p))
}
