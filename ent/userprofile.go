// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/userprofile"
)

// UserProfile is the model entity for the UserProfile schema.
type UserProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// sole_trader, limited_company, partnership, or empty when unknown
	BusinessStructure string `json:"business_structure,omitempty"`
	// Industry holds the value of the "industry" field.
	Industry string `json:"industry,omitempty"`
	// ExperienceLevel holds the value of the "experience_level" field.
	ExperienceLevel string `json:"experience_level,omitempty"`
	// Free text, matched by keyword against lesson categories
	PainPoint string `json:"pain_point,omitempty"`
	// LearningGoal holds the value of the "learning_goal" field.
	LearningGoal string `json:"learning_goal,omitempty"`
	// 15_minutes, 30_minutes, 1_hour or 2_hours
	TimeCommitment string `json:"time_commitment,omitempty"`
	// Raw user input: exact figure, range, bucket label, or free text
	AnnualTurnover string `json:"annual_turnover,omitempty"`
	// VatRegistered holds the value of the "vat_registered" field.
	VatRegistered bool `json:"vat_registered,omitempty"`
	// not_required, required, compliant, enrolled
	MtdStatus string `json:"mtd_status,omitempty"`
	// Named constant (december, march, tax_year) or ISO date
	AccountingYearEnd string `json:"accounting_year_end,omitempty"`
	// NextVatReturnDue holds the value of the "next_vat_return_due" field.
	NextVatReturnDue *time.Time `json:"next_vat_return_due,omitempty"`
	// TurnoverLastUpdated holds the value of the "turnover_last_updated" field.
	TurnoverLastUpdated *time.Time `json:"turnover_last_updated,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprofile.FieldVatRegistered:
			values[i] = new(sql.NullBool)
		case userprofile.FieldID:
			values[i] = new(sql.NullInt64)
		case userprofile.FieldBusinessStructure, userprofile.FieldIndustry, userprofile.FieldExperienceLevel, userprofile.FieldPainPoint, userprofile.FieldLearningGoal, userprofile.FieldTimeCommitment, userprofile.FieldAnnualTurnover, userprofile.FieldMtdStatus, userprofile.FieldAccountingYearEnd:
			values[i] = new(sql.NullString)
		case userprofile.FieldNextVatReturnDue, userprofile.FieldTurnoverLastUpdated, userprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProfile fields.
func (_m *UserProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userprofile.FieldBusinessStructure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_structure", values[i])
			} else if value.Valid {
				_m.BusinessStructure = value.String
			}
		case userprofile.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				_m.Industry = value.String
			}
		case userprofile.FieldExperienceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience_level", values[i])
			} else if value.Valid {
				_m.ExperienceLevel = value.String
			}
		case userprofile.FieldPainPoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pain_point", values[i])
			} else if value.Valid {
				_m.PainPoint = value.String
			}
		case userprofile.FieldLearningGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_goal", values[i])
			} else if value.Valid {
				_m.LearningGoal = value.String
			}
		case userprofile.FieldTimeCommitment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_commitment", values[i])
			} else if value.Valid {
				_m.TimeCommitment = value.String
			}
		case userprofile.FieldAnnualTurnover:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field annual_turnover", values[i])
			} else if value.Valid {
				_m.AnnualTurnover = value.String
			}
		case userprofile.FieldVatRegistered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field vat_registered", values[i])
			} else if value.Valid {
				_m.VatRegistered = value.Bool
			}
		case userprofile.FieldMtdStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mtd_status", values[i])
			} else if value.Valid {
				_m.MtdStatus = value.String
			}
		case userprofile.FieldAccountingYearEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field accounting_year_end", values[i])
			} else if value.Valid {
				_m.AccountingYearEnd = value.String
			}
		case userprofile.FieldNextVatReturnDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_vat_return_due", values[i])
			} else if value.Valid {
				_m.NextVatReturnDue = new(time.Time)
				*_m.NextVatReturnDue = value.Time
			}
		case userprofile.FieldTurnoverLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field turnover_last_updated", values[i])
			} else if value.Valid {
				_m.TurnoverLastUpdated = new(time.Time)
				*_m.TurnoverLastUpdated = value.Time
			}
		case userprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProfile.
// This includes values selected through modifiers, order, etc.
func (_m *UserProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserProfile.
// Note that you need to call UserProfile.Unwrap() before calling this method if this UserProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProfile) Update() *UserProfileUpdateOne {
	return NewUserProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProfile) Unwrap() *UserProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProfile) String() string {
	var builder strings.Builder
	builder.WriteString("UserProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_structure=")
	builder.WriteString(_m.BusinessStructure)
	builder.WriteString(", ")
	builder.WriteString("industry=")
	builder.WriteString(_m.Industry)
	builder.WriteString(", ")
	builder.WriteString("experience_level=")
	builder.WriteString(_m.ExperienceLevel)
	builder.WriteString(", ")
	builder.WriteString("pain_point=")
	builder.WriteString(_m.PainPoint)
	builder.WriteString(", ")
	builder.WriteString("learning_goal=")
	builder.WriteString(_m.LearningGoal)
	builder.WriteString(", ")
	builder.WriteString("time_commitment=")
	builder.WriteString(_m.TimeCommitment)
	builder.WriteString(", ")
	builder.WriteString("annual_turnover=")
	builder.WriteString(_m.AnnualTurnover)
	builder.WriteString(", ")
	builder.WriteString("vat_registered=")
	builder.WriteString(fmt.Sprintf("%v", _m.VatRegistered))
	builder.WriteString(", ")
	builder.WriteString("mtd_status=")
	builder.WriteString(_m.MtdStatus)
	builder.WriteString(", ")
	builder.WriteString("accounting_year_end=")
	builder.WriteString(_m.AccountingYearEnd)
	builder.WriteString(", ")
	if v := _m.NextVatReturnDue; v != nil {
		builder.WriteString("next_vat_return_due=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TurnoverLastUpdated; v != nil {
		builder.WriteString("turnover_last_updated=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserProfiles is a parsable slice of UserProfile.
type UserProfiles []*UserProfile
