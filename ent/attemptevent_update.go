// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/iqorum/ent/attemptevent"
	"github.com/abhisek/iqorum/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *AttemptEventUpdate) SetAssessment(v string) *AttemptEventUpdate {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAssessment(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdate) SetAction(v string) *AttemptEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAction(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *AttemptEventUpdate) SetQuestionsAnswered(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionsAnswered(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *AttemptEventUpdate) AddQuestionsAnswered(v int) *AttemptEventUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdate) SetCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswers(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdate) AddCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdate) SetDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDurationSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdate) AddDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetResultLabel sets the "result_label" field.
func (_u *AttemptEventUpdate) SetResultLabel(v string) *AttemptEventUpdate {
	_u.mutation.SetResultLabel(v)
	return _u
}

// SetNillableResultLabel sets the "result_label" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResultLabel(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetResultLabel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v int) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Assessment(); ok {
		if err := attemptevent.AssessmentValidator(v); err != nil {
			return &ValidationError{Name: "assessment", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.assessment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(attemptevent.FieldAssessment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(attemptevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(attemptevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultLabel(); ok {
		_spec.SetField(attemptevent.FieldResultLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *AttemptEventUpdateOne) SetAssessment(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAssessment(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdateOne) SetAction(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAction(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *AttemptEventUpdateOne) SetQuestionsAnswered(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionsAnswered(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *AttemptEventUpdateOne) AddQuestionsAnswered(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswers(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdateOne) AddCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdateOne) SetDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDurationSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdateOne) AddDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetResultLabel sets the "result_label" field.
func (_u *AttemptEventUpdateOne) SetResultLabel(v string) *AttemptEventUpdateOne {
	_u.mutation.SetResultLabel(v)
	return _u
}

// SetNillableResultLabel sets the "result_label" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResultLabel(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResultLabel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Assessment(); ok {
		if err := attemptevent.AssessmentValidator(v); err != nil {
			return &ValidationError{Name: "assessment", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.assessment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(attemptevent.FieldAssessment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(attemptevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(attemptevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultLabel(); ok {
		_spec.SetField(attemptevent.FieldResultLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
