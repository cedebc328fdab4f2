// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprofile type in the database.
	Label = "user_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBusinessStructure holds the string denoting the business_structure field in the database.
	FieldBusinessStructure = "business_structure"
	// FieldIndustry holds the string denoting the industry field in the database.
	FieldIndustry = "industry"
	// FieldExperienceLevel holds the string denoting the experience_level field in the database.
	FieldExperienceLevel = "experience_level"
	// FieldPainPoint holds the string denoting the pain_point field in the database.
	FieldPainPoint = "pain_point"
	// FieldLearningGoal holds the string denoting the learning_goal field in the database.
	FieldLearningGoal = "learning_goal"
	// FieldTimeCommitment holds the string denoting the time_commitment field in the database.
	FieldTimeCommitment = "time_commitment"
	// FieldAnnualTurnover holds the string denoting the annual_turnover field in the database.
	FieldAnnualTurnover = "annual_turnover"
	// FieldVatRegistered holds the string denoting the vat_registered field in the database.
	FieldVatRegistered = "vat_registered"
	// FieldMtdStatus holds the string denoting the mtd_status field in the database.
	FieldMtdStatus = "mtd_status"
	// FieldAccountingYearEnd holds the string denoting the accounting_year_end field in the database.
	FieldAccountingYearEnd = "accounting_year_end"
	// FieldNextVatReturnDue holds the string denoting the next_vat_return_due field in the database.
	FieldNextVatReturnDue = "next_vat_return_due"
	// FieldTurnoverLastUpdated holds the string denoting the turnover_last_updated field in the database.
	FieldTurnoverLastUpdated = "turnover_last_updated"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the userprofile in the database.
	Table = "user_profiles"
)

// Columns holds all SQL columns for userprofile fields.
var Columns = []string{
	FieldID,
	FieldBusinessStructure,
	FieldIndustry,
	FieldExperienceLevel,
	FieldPainPoint,
	FieldLearningGoal,
	FieldTimeCommitment,
	FieldAnnualTurnover,
	FieldVatRegistered,
	FieldMtdStatus,
	FieldAccountingYearEnd,
	FieldNextVatReturnDue,
	FieldTurnoverLastUpdated,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultBusinessStructure holds the default value on creation for the "business_structure" field.
	DefaultBusinessStructure string
	// DefaultIndustry holds the default value on creation for the "industry" field.
	DefaultIndustry string
	// DefaultExperienceLevel holds the default value on creation for the "experience_level" field.
	DefaultExperienceLevel string
	// DefaultPainPoint holds the default value on creation for the "pain_point" field.
	DefaultPainPoint string
	// DefaultLearningGoal holds the default value on creation for the "learning_goal" field.
	DefaultLearningGoal string
	// DefaultTimeCommitment holds the default value on creation for the "time_commitment" field.
	DefaultTimeCommitment string
	// DefaultAnnualTurnover holds the default value on creation for the "annual_turnover" field.
	DefaultAnnualTurnover string
	// DefaultVatRegistered holds the default value on creation for the "vat_registered" field.
	DefaultVatRegistered bool
	// DefaultMtdStatus holds the default value on creation for the "mtd_status" field.
	DefaultMtdStatus string
	// DefaultAccountingYearEnd holds the default value on creation for the "accounting_year_end" field.
	DefaultAccountingYearEnd string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessStructure orders the results by the business_structure field.
func ByBusinessStructure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessStructure, opts...).ToFunc()
}

// ByIndustry orders the results by the industry field.
func ByIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustry, opts...).ToFunc()
}

// ByExperienceLevel orders the results by the experience_level field.
func ByExperienceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceLevel, opts...).ToFunc()
}

// ByPainPoint orders the results by the pain_point field.
func ByPainPoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPainPoint, opts...).ToFunc()
}

// ByLearningGoal orders the results by the learning_goal field.
func ByLearningGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningGoal, opts...).ToFunc()
}

// ByTimeCommitment orders the results by the time_commitment field.
func ByTimeCommitment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeCommitment, opts...).ToFunc()
}

// ByAnnualTurnover orders the results by the annual_turnover field.
func ByAnnualTurnover(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnualTurnover, opts...).ToFunc()
}

// ByVatRegistered orders the results by the vat_registered field.
func ByVatRegistered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatRegistered, opts...).ToFunc()
}

// ByMtdStatus orders the results by the mtd_status field.
func ByMtdStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMtdStatus, opts...).ToFunc()
}

// ByAccountingYearEnd orders the results by the accounting_year_end field.
func ByAccountingYearEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountingYearEnd, opts...).ToFunc()
}

// ByNextVatReturnDue orders the results by the next_vat_return_due field.
func ByNextVatReturnDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextVatReturnDue, opts...).ToFunc()
}

// ByTurnoverLastUpdated orders the results by the turnover_last_updated field.
func ByTurnoverLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnoverLastUpdated, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
