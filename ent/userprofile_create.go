// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlearn/finlearn/ent/userprofile"
)

// UserProfileCreate is the builder for creating a UserProfile entity.
type UserProfileCreate struct {
	config
	mutation *UserProfileMutation
	hooks    []Hook
}

// SetBusinessStructure sets the "business_structure" field.
func (_c *UserProfileCreate) SetBusinessStructure(v string) *UserProfileCreate {
	_c.mutation.SetBusinessStructure(v)
	return _c
}

// SetNillableBusinessStructure sets the "business_structure" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableBusinessStructure(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetBusinessStructure(*v)
	}
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *UserProfileCreate) SetIndustry(v string) *UserProfileCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableIndustry(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetExperienceLevel sets the "experience_level" field.
func (_c *UserProfileCreate) SetExperienceLevel(v string) *UserProfileCreate {
	_c.mutation.SetExperienceLevel(v)
	return _c
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableExperienceLevel(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetExperienceLevel(*v)
	}
	return _c
}

// SetPainPoint sets the "pain_point" field.
func (_c *UserProfileCreate) SetPainPoint(v string) *UserProfileCreate {
	_c.mutation.SetPainPoint(v)
	return _c
}

// SetNillablePainPoint sets the "pain_point" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillablePainPoint(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetPainPoint(*v)
	}
	return _c
}

// SetLearningGoal sets the "learning_goal" field.
func (_c *UserProfileCreate) SetLearningGoal(v string) *UserProfileCreate {
	_c.mutation.SetLearningGoal(v)
	return _c
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableLearningGoal(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetLearningGoal(*v)
	}
	return _c
}

// SetTimeCommitment sets the "time_commitment" field.
func (_c *UserProfileCreate) SetTimeCommitment(v string) *UserProfileCreate {
	_c.mutation.SetTimeCommitment(v)
	return _c
}

// SetNillableTimeCommitment sets the "time_commitment" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableTimeCommitment(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetTimeCommitment(*v)
	}
	return _c
}

// SetAnnualTurnover sets the "annual_turnover" field.
func (_c *UserProfileCreate) SetAnnualTurnover(v string) *UserProfileCreate {
	_c.mutation.SetAnnualTurnover(v)
	return _c
}

// SetNillableAnnualTurnover sets the "annual_turnover" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableAnnualTurnover(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetAnnualTurnover(*v)
	}
	return _c
}

// SetVatRegistered sets the "vat_registered" field.
func (_c *UserProfileCreate) SetVatRegistered(v bool) *UserProfileCreate {
	_c.mutation.SetVatRegistered(v)
	return _c
}

// SetNillableVatRegistered sets the "vat_registered" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableVatRegistered(v *bool) *UserProfileCreate {
	if v != nil {
		_c.SetVatRegistered(*v)
	}
	return _c
}

// SetMtdStatus sets the "mtd_status" field.
func (_c *UserProfileCreate) SetMtdStatus(v string) *UserProfileCreate {
	_c.mutation.SetMtdStatus(v)
	return _c
}

// SetNillableMtdStatus sets the "mtd_status" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableMtdStatus(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetMtdStatus(*v)
	}
	return _c
}

// SetAccountingYearEnd sets the "accounting_year_end" field.
func (_c *UserProfileCreate) SetAccountingYearEnd(v string) *UserProfileCreate {
	_c.mutation.SetAccountingYearEnd(v)
	return _c
}

// SetNillableAccountingYearEnd sets the "accounting_year_end" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableAccountingYearEnd(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetAccountingYearEnd(*v)
	}
	return _c
}

// SetNextVatReturnDue sets the "next_vat_return_due" field.
func (_c *UserProfileCreate) SetNextVatReturnDue(v time.Time) *UserProfileCreate {
	_c.mutation.SetNextVatReturnDue(v)
	return _c
}

// SetNillableNextVatReturnDue sets the "next_vat_return_due" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableNextVatReturnDue(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetNextVatReturnDue(*v)
	}
	return _c
}

// SetTurnoverLastUpdated sets the "turnover_last_updated" field.
func (_c *UserProfileCreate) SetTurnoverLastUpdated(v time.Time) *UserProfileCreate {
	_c.mutation.SetTurnoverLastUpdated(v)
	return _c
}

// SetNillableTurnoverLastUpdated sets the "turnover_last_updated" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableTurnoverLastUpdated(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetTurnoverLastUpdated(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserProfileCreate) SetUpdatedAt(v time.Time) *UserProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableUpdatedAt(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the UserProfileMutation object of the builder.
func (_c *UserProfileCreate) Mutation() *UserProfileMutation {
	return _c.mutation
}

// Save creates the UserProfile in the database.
func (_c *UserProfileCreate) Save(ctx context.Context) (*UserProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProfileCreate) SaveX(ctx context.Context) *UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProfileCreate) defaults() {
	if _, ok := _c.mutation.BusinessStructure(); !ok {
		v := userprofile.DefaultBusinessStructure
		_c.mutation.SetBusinessStructure(v)
	}
	if _, ok := _c.mutation.Industry(); !ok {
		v := userprofile.DefaultIndustry
		_c.mutation.SetIndustry(v)
	}
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		v := userprofile.DefaultExperienceLevel
		_c.mutation.SetExperienceLevel(v)
	}
	if _, ok := _c.mutation.PainPoint(); !ok {
		v := userprofile.DefaultPainPoint
		_c.mutation.SetPainPoint(v)
	}
	if _, ok := _c.mutation.LearningGoal(); !ok {
		v := userprofile.DefaultLearningGoal
		_c.mutation.SetLearningGoal(v)
	}
	if _, ok := _c.mutation.TimeCommitment(); !ok {
		v := userprofile.DefaultTimeCommitment
		_c.mutation.SetTimeCommitment(v)
	}
	if _, ok := _c.mutation.AnnualTurnover(); !ok {
		v := userprofile.DefaultAnnualTurnover
		_c.mutation.SetAnnualTurnover(v)
	}
	if _, ok := _c.mutation.VatRegistered(); !ok {
		v := userprofile.DefaultVatRegistered
		_c.mutation.SetVatRegistered(v)
	}
	if _, ok := _c.mutation.MtdStatus(); !ok {
		v := userprofile.DefaultMtdStatus
		_c.mutation.SetMtdStatus(v)
	}
	if _, ok := _c.mutation.AccountingYearEnd(); !ok {
		v := userprofile.DefaultAccountingYearEnd
		_c.mutation.SetAccountingYearEnd(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProfileCreate) check() error {
	if _, ok := _c.mutation.BusinessStructure(); !ok {
		return &ValidationError{Name: "business_structure", err: errors.New(`ent: missing required field "UserProfile.business_structure"`)}
	}
	if _, ok := _c.mutation.Industry(); !ok {
		return &ValidationError{Name: "industry", err: errors.New(`ent: missing required field "UserProfile.industry"`)}
	}
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		return &ValidationError{Name: "experience_level", err: errors.New(`ent: missing required field "UserProfile.experience_level"`)}
	}
	if _, ok := _c.mutation.PainPoint(); !ok {
		return &ValidationError{Name: "pain_point", err: errors.New(`ent: missing required field "UserProfile.pain_point"`)}
	}
	if _, ok := _c.mutation.LearningGoal(); !ok {
		return &ValidationError{Name: "learning_goal", err: errors.New(`ent: missing required field "UserProfile.learning_goal"`)}
	}
	if _, ok := _c.mutation.TimeCommitment(); !ok {
		return &ValidationError{Name: "time_commitment", err: errors.New(`ent: missing required field "UserProfile.time_commitment"`)}
	}
	if _, ok := _c.mutation.AnnualTurnover(); !ok {
		return &ValidationError{Name: "annual_turnover", err: errors.New(`ent: missing required field "UserProfile.annual_turnover"`)}
	}
	if _, ok := _c.mutation.VatRegistered(); !ok {
		return &ValidationError{Name: "vat_registered", err: errors.New(`ent: missing required field "UserProfile.vat_registered"`)}
	}
	if _, ok := _c.mutation.MtdStatus(); !ok {
		return &ValidationError{Name: "mtd_status", err: errors.New(`ent: missing required field "UserProfile.mtd_status"`)}
	}
	if _, ok := _c.mutation.AccountingYearEnd(); !ok {
		return &ValidationError{Name: "accounting_year_end", err: errors.New(`ent: missing required field "UserProfile.accounting_year_end"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserProfile.updated_at"`)}
	}
	return nil
}

func (_c *UserProfileCreate) sqlSave(ctx context.Context) (*UserProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserProfileCreate) createSpec() (*UserProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprofile.Table, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BusinessStructure(); ok {
		_spec.SetField(userprofile.FieldBusinessStructure, field.TypeString, value)
		_node.BusinessStructure = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(userprofile.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.ExperienceLevel(); ok {
		_spec.SetField(userprofile.FieldExperienceLevel, field.TypeString, value)
		_node.ExperienceLevel = value
	}
	if value, ok := _c.mutation.PainPoint(); ok {
		_spec.SetField(userprofile.FieldPainPoint, field.TypeString, value)
		_node.PainPoint = value
	}
	if value, ok := _c.mutation.LearningGoal(); ok {
		_spec.SetField(userprofile.FieldLearningGoal, field.TypeString, value)
		_node.LearningGoal = value
	}
	if value, ok := _c.mutation.TimeCommitment(); ok {
		_spec.SetField(userprofile.FieldTimeCommitment, field.TypeString, value)
		_node.TimeCommitment = value
	}
	if value, ok := _c.mutation.AnnualTurnover(); ok {
		_spec.SetField(userprofile.FieldAnnualTurnover, field.TypeString, value)
		_node.AnnualTurnover = value
	}
	if value, ok := _c.mutation.VatRegistered(); ok {
		_spec.SetField(userprofile.FieldVatRegistered, field.TypeBool, value)
		_node.VatRegistered = value
	}
	if value, ok := _c.mutation.MtdStatus(); ok {
		_spec.SetField(userprofile.FieldMtdStatus, field.TypeString, value)
		_node.MtdStatus = value
	}
	if value, ok := _c.mutation.AccountingYearEnd(); ok {
		_spec.SetField(userprofile.FieldAccountingYearEnd, field.TypeString, value)
		_node.AccountingYearEnd = value
	}
	if value, ok := _c.mutation.NextVatReturnDue(); ok {
		_spec.SetField(userprofile.FieldNextVatReturnDue, field.TypeTime, value)
		_node.NextVatReturnDue = &value
	}
	if value, ok := _c.mutation.TurnoverLastUpdated(); ok {
		_spec.SetField(userprofile.FieldTurnoverLastUpdated, field.TypeTime, value)
		_node.TurnoverLastUpdated = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserProfileCreateBulk is the builder for creating many UserProfile entities in bulk.
type UserProfileCreateBulk struct {
	config
	err      error
	builders []*UserProfileCreate
}

// Save creates the UserProfile entities in the database.
func (_c *UserProfileCreateBulk) Save(ctx context.Context) ([]*UserProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserProfileCreateBulk) SaveX(ctx context.Context) []*UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
