// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlearn/finlearn/ent/predicate"
	"github.com/finlearn/finlearn/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessStructure sets the "business_structure" field.
func (_u *UserProfileUpdate) SetBusinessStructure(v string) *UserProfileUpdate {
	_u.mutation.SetBusinessStructure(v)
	return _u
}

// SetNillableBusinessStructure sets the "business_structure" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableBusinessStructure(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetBusinessStructure(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *UserProfileUpdate) SetIndustry(v string) *UserProfileUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableIndustry(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *UserProfileUpdate) SetExperienceLevel(v string) *UserProfileUpdate {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableExperienceLevel(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetPainPoint sets the "pain_point" field.
func (_u *UserProfileUpdate) SetPainPoint(v string) *UserProfileUpdate {
	_u.mutation.SetPainPoint(v)
	return _u
}

// SetNillablePainPoint sets the "pain_point" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillablePainPoint(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetPainPoint(*v)
	}
	return _u
}

// SetLearningGoal sets the "learning_goal" field.
func (_u *UserProfileUpdate) SetLearningGoal(v string) *UserProfileUpdate {
	_u.mutation.SetLearningGoal(v)
	return _u
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableLearningGoal(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetLearningGoal(*v)
	}
	return _u
}

// SetTimeCommitment sets the "time_commitment" field.
func (_u *UserProfileUpdate) SetTimeCommitment(v string) *UserProfileUpdate {
	_u.mutation.SetTimeCommitment(v)
	return _u
}

// SetNillableTimeCommitment sets the "time_commitment" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableTimeCommitment(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetTimeCommitment(*v)
	}
	return _u
}

// SetAnnualTurnover sets the "annual_turnover" field.
func (_u *UserProfileUpdate) SetAnnualTurnover(v string) *UserProfileUpdate {
	_u.mutation.SetAnnualTurnover(v)
	return _u
}

// SetNillableAnnualTurnover sets the "annual_turnover" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAnnualTurnover(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetAnnualTurnover(*v)
	}
	return _u
}

// SetVatRegistered sets the "vat_registered" field.
func (_u *UserProfileUpdate) SetVatRegistered(v bool) *UserProfileUpdate {
	_u.mutation.SetVatRegistered(v)
	return _u
}

// SetNillableVatRegistered sets the "vat_registered" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableVatRegistered(v *bool) *UserProfileUpdate {
	if v != nil {
		_u.SetVatRegistered(*v)
	}
	return _u
}

// SetMtdStatus sets the "mtd_status" field.
func (_u *UserProfileUpdate) SetMtdStatus(v string) *UserProfileUpdate {
	_u.mutation.SetMtdStatus(v)
	return _u
}

// SetNillableMtdStatus sets the "mtd_status" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableMtdStatus(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetMtdStatus(*v)
	}
	return _u
}

// SetAccountingYearEnd sets the "accounting_year_end" field.
func (_u *UserProfileUpdate) SetAccountingYearEnd(v string) *UserProfileUpdate {
	_u.mutation.SetAccountingYearEnd(v)
	return _u
}

// SetNillableAccountingYearEnd sets the "accounting_year_end" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAccountingYearEnd(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetAccountingYearEnd(*v)
	}
	return _u
}

// SetNextVatReturnDue sets the "next_vat_return_due" field.
func (_u *UserProfileUpdate) SetNextVatReturnDue(v time.Time) *UserProfileUpdate {
	_u.mutation.SetNextVatReturnDue(v)
	return _u
}

// SetNillableNextVatReturnDue sets the "next_vat_return_due" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableNextVatReturnDue(v *time.Time) *UserProfileUpdate {
	if v != nil {
		_u.SetNextVatReturnDue(*v)
	}
	return _u
}

// ClearNextVatReturnDue clears the value of the "next_vat_return_due" field.
func (_u *UserProfileUpdate) ClearNextVatReturnDue() *UserProfileUpdate {
	_u.mutation.ClearNextVatReturnDue()
	return _u
}

// SetTurnoverLastUpdated sets the "turnover_last_updated" field.
func (_u *UserProfileUpdate) SetTurnoverLastUpdated(v time.Time) *UserProfileUpdate {
	_u.mutation.SetTurnoverLastUpdated(v)
	return _u
}

// SetNillableTurnoverLastUpdated sets the "turnover_last_updated" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableTurnoverLastUpdated(v *time.Time) *UserProfileUpdate {
	if v != nil {
		_u.SetTurnoverLastUpdated(*v)
	}
	return _u
}

// ClearTurnoverLastUpdated clears the value of the "turnover_last_updated" field.
func (_u *UserProfileUpdate) ClearTurnoverLastUpdated() *UserProfileUpdate {
	_u.mutation.ClearTurnoverLastUpdated()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdate) SetUpdatedAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BusinessStructure(); ok {
		_spec.SetField(userprofile.FieldBusinessStructure, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(userprofile.FieldIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(userprofile.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PainPoint(); ok {
		_spec.SetField(userprofile.FieldPainPoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoal(); ok {
		_spec.SetField(userprofile.FieldLearningGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeCommitment(); ok {
		_spec.SetField(userprofile.FieldTimeCommitment, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnnualTurnover(); ok {
		_spec.SetField(userprofile.FieldAnnualTurnover, field.TypeString, value)
	}
	if value, ok := _u.mutation.VatRegistered(); ok {
		_spec.SetField(userprofile.FieldVatRegistered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MtdStatus(); ok {
		_spec.SetField(userprofile.FieldMtdStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountingYearEnd(); ok {
		_spec.SetField(userprofile.FieldAccountingYearEnd, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextVatReturnDue(); ok {
		_spec.SetField(userprofile.FieldNextVatReturnDue, field.TypeTime, value)
	}
	if _u.mutation.NextVatReturnDueCleared() {
		_spec.ClearField(userprofile.FieldNextVatReturnDue, field.TypeTime)
	}
	if value, ok := _u.mutation.TurnoverLastUpdated(); ok {
		_spec.SetField(userprofile.FieldTurnoverLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.TurnoverLastUpdatedCleared() {
		_spec.ClearField(userprofile.FieldTurnoverLastUpdated, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetBusinessStructure sets the "business_structure" field.
func (_u *UserProfileUpdateOne) SetBusinessStructure(v string) *UserProfileUpdateOne {
	_u.mutation.SetBusinessStructure(v)
	return _u
}

// SetNillableBusinessStructure sets the "business_structure" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableBusinessStructure(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetBusinessStructure(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *UserProfileUpdateOne) SetIndustry(v string) *UserProfileUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableIndustry(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *UserProfileUpdateOne) SetExperienceLevel(v string) *UserProfileUpdateOne {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableExperienceLevel(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetPainPoint sets the "pain_point" field.
func (_u *UserProfileUpdateOne) SetPainPoint(v string) *UserProfileUpdateOne {
	_u.mutation.SetPainPoint(v)
	return _u
}

// SetNillablePainPoint sets the "pain_point" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillablePainPoint(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetPainPoint(*v)
	}
	return _u
}

// SetLearningGoal sets the "learning_goal" field.
func (_u *UserProfileUpdateOne) SetLearningGoal(v string) *UserProfileUpdateOne {
	_u.mutation.SetLearningGoal(v)
	return _u
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableLearningGoal(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetLearningGoal(*v)
	}
	return _u
}

// SetTimeCommitment sets the "time_commitment" field.
func (_u *UserProfileUpdateOne) SetTimeCommitment(v string) *UserProfileUpdateOne {
	_u.mutation.SetTimeCommitment(v)
	return _u
}

// SetNillableTimeCommitment sets the "time_commitment" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableTimeCommitment(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetTimeCommitment(*v)
	}
	return _u
}

// SetAnnualTurnover sets the "annual_turnover" field.
func (_u *UserProfileUpdateOne) SetAnnualTurnover(v string) *UserProfileUpdateOne {
	_u.mutation.SetAnnualTurnover(v)
	return _u
}

// SetNillableAnnualTurnover sets the "annual_turnover" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAnnualTurnover(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAnnualTurnover(*v)
	}
	return _u
}

// SetVatRegistered sets the "vat_registered" field.
func (_u *UserProfileUpdateOne) SetVatRegistered(v bool) *UserProfileUpdateOne {
	_u.mutation.SetVatRegistered(v)
	return _u
}

// SetNillableVatRegistered sets the "vat_registered" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableVatRegistered(v *bool) *UserProfileUpdateOne {
	if v != nil {
		_u.SetVatRegistered(*v)
	}
	return _u
}

// SetMtdStatus sets the "mtd_status" field.
func (_u *UserProfileUpdateOne) SetMtdStatus(v string) *UserProfileUpdateOne {
	_u.mutation.SetMtdStatus(v)
	return _u
}

// SetNillableMtdStatus sets the "mtd_status" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableMtdStatus(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetMtdStatus(*v)
	}
	return _u
}

// SetAccountingYearEnd sets the "accounting_year_end" field.
func (_u *UserProfileUpdateOne) SetAccountingYearEnd(v string) *UserProfileUpdateOne {
	_u.mutation.SetAccountingYearEnd(v)
	return _u
}

// SetNillableAccountingYearEnd sets the "accounting_year_end" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAccountingYearEnd(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAccountingYearEnd(*v)
	}
	return _u
}

// SetNextVatReturnDue sets the "next_vat_return_due" field.
func (_u *UserProfileUpdateOne) SetNextVatReturnDue(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetNextVatReturnDue(v)
	return _u
}

// SetNillableNextVatReturnDue sets the "next_vat_return_due" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableNextVatReturnDue(v *time.Time) *UserProfileUpdateOne {
	if v != nil {
		_u.SetNextVatReturnDue(*v)
	}
	return _u
}

// ClearNextVatReturnDue clears the value of the "next_vat_return_due" field.
func (_u *UserProfileUpdateOne) ClearNextVatReturnDue() *UserProfileUpdateOne {
	_u.mutation.ClearNextVatReturnDue()
	return _u
}

// SetTurnoverLastUpdated sets the "turnover_last_updated" field.
func (_u *UserProfileUpdateOne) SetTurnoverLastUpdated(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetTurnoverLastUpdated(v)
	return _u
}

// SetNillableTurnoverLastUpdated sets the "turnover_last_updated" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableTurnoverLastUpdated(v *time.Time) *UserProfileUpdateOne {
	if v != nil {
		_u.SetTurnoverLastUpdated(*v)
	}
	return _u
}

// ClearTurnoverLastUpdated clears the value of the "turnover_last_updated" field.
func (_u *UserProfileUpdateOne) ClearTurnoverLastUpdated() *UserProfileUpdateOne {
	_u.mutation.ClearTurnoverLastUpdated()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdateOne) SetUpdatedAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
	if value, ok := _u.mutation.BusinessStructure(); ok {
		_spec.SetField(userprofile.FieldBusinessStructure, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(userprofile.FieldIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(userprofile.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PainPoint(); ok {
		_spec.SetField(userprofile.FieldPainPoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoal(); ok {
		_spec.SetField(userprofile.FieldLearningGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeCommitment(); ok {
		_spec.SetField(userprofile.FieldTimeCommitment, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnnualTurnover(); ok {
		_spec.SetField(userprofile.FieldAnnualTurnover, field.TypeString, value)
	}
	if value, ok := _u.mutation.VatRegistered(); ok {
		_spec.SetField(userprofile.FieldVatRegistered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MtdStatus(); ok {
		_spec.SetField(userprofile.FieldMtdStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountingYearEnd(); ok {
		_spec.SetField(userprofile.FieldAccountingYearEnd, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextVatReturnDue(); ok {
		_spec.SetField(userprofile.FieldNextVatReturnDue, field.TypeTime, value)
	}
	if _u.mutation.NextVatReturnDueCleared() {
		_spec.ClearField(userprofile.FieldNextVatReturnDue, field.TypeTime)
	}
	if value, ok := _u.mutation.TurnoverLastUpdated(); ok {
		_spec.SetField(userprofile.FieldTurnoverLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.TurnoverLastUpdatedCleared() {
		_spec.ClearField(userprofile.FieldTurnoverLastUpdated, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
