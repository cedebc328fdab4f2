// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldID, id))
}

// BusinessStructure applies equality check predicate on the "business_structure" field. It's identical to BusinessStructureEQ.
func BusinessStructure(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldBusinessStructure, v))
}

// Industry applies equality check predicate on the "industry" field. It's identical to IndustryEQ.
func Industry(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldIndustry, v))
}

// ExperienceLevel applies equality check predicate on the "experience_level" field. It's identical to ExperienceLevelEQ.
func ExperienceLevel(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldExperienceLevel, v))
}

// PainPoint applies equality check predicate on the "pain_point" field. It's identical to PainPointEQ.
func PainPoint(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPainPoint, v))
}

// LearningGoal applies equality check predicate on the "learning_goal" field. It's identical to LearningGoalEQ.
func LearningGoal(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldLearningGoal, v))
}

// TimeCommitment applies equality check predicate on the "time_commitment" field. It's identical to TimeCommitmentEQ.
func TimeCommitment(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTimeCommitment, v))
}

// AnnualTurnover applies equality check predicate on the "annual_turnover" field. It's identical to AnnualTurnoverEQ.
func AnnualTurnover(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAnnualTurnover, v))
}

// VatRegistered applies equality check predicate on the "vat_registered" field. It's identical to VatRegisteredEQ.
func VatRegistered(v bool) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldVatRegistered, v))
}

// MtdStatus applies equality check predicate on the "mtd_status" field. It's identical to MtdStatusEQ.
func MtdStatus(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldMtdStatus, v))
}

// AccountingYearEnd applies equality check predicate on the "accounting_year_end" field. It's identical to AccountingYearEndEQ.
func AccountingYearEnd(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAccountingYearEnd, v))
}

// NextVatReturnDue applies equality check predicate on the "next_vat_return_due" field. It's identical to NextVatReturnDueEQ.
func NextVatReturnDue(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldNextVatReturnDue, v))
}

// TurnoverLastUpdated applies equality check predicate on the "turnover_last_updated" field. It's identical to TurnoverLastUpdatedEQ.
func TurnoverLastUpdated(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTurnoverLastUpdated, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessStructureEQ applies the EQ predicate on the "business_structure" field.
func BusinessStructureEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldBusinessStructure, v))
}

// BusinessStructureNEQ applies the NEQ predicate on the "business_structure" field.
func BusinessStructureNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldBusinessStructure, v))
}

// BusinessStructureIn applies the In predicate on the "business_structure" field.
func BusinessStructureIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldBusinessStructure, vs...))
}

// BusinessStructureNotIn applies the NotIn predicate on the "business_structure" field.
func BusinessStructureNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldBusinessStructure, vs...))
}

// BusinessStructureGT applies the GT predicate on the "business_structure" field.
func BusinessStructureGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldBusinessStructure, v))
}

// BusinessStructureGTE applies the GTE predicate on the "business_structure" field.
func BusinessStructureGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldBusinessStructure, v))
}

// BusinessStructureLT applies the LT predicate on the "business_structure" field.
func BusinessStructureLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldBusinessStructure, v))
}

// BusinessStructureLTE applies the LTE predicate on the "business_structure" field.
func BusinessStructureLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldBusinessStructure, v))
}

// BusinessStructureContains applies the Contains predicate on the "business_structure" field.
func BusinessStructureContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldBusinessStructure, v))
}

// BusinessStructureHasPrefix applies the HasPrefix predicate on the "business_structure" field.
func BusinessStructureHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldBusinessStructure, v))
}

// BusinessStructureHasSuffix applies the HasSuffix predicate on the "business_structure" field.
func BusinessStructureHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldBusinessStructure, v))
}

// BusinessStructureEqualFold applies the EqualFold predicate on the "business_structure" field.
func BusinessStructureEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldBusinessStructure, v))
}

// BusinessStructureContainsFold applies the ContainsFold predicate on the "business_structure" field.
func BusinessStructureContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldBusinessStructure, v))
}

// IndustryEQ applies the EQ predicate on the "industry" field.
func IndustryEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldIndustry, v))
}

// IndustryNEQ applies the NEQ predicate on the "industry" field.
func IndustryNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldIndustry, v))
}

// IndustryIn applies the In predicate on the "industry" field.
func IndustryIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldIndustry, vs...))
}

// IndustryNotIn applies the NotIn predicate on the "industry" field.
func IndustryNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldIndustry, vs...))
}

// IndustryGT applies the GT predicate on the "industry" field.
func IndustryGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldIndustry, v))
}

// IndustryGTE applies the GTE predicate on the "industry" field.
func IndustryGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldIndustry, v))
}

// IndustryLT applies the LT predicate on the "industry" field.
func IndustryLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldIndustry, v))
}

// IndustryLTE applies the LTE predicate on the "industry" field.
func IndustryLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldIndustry, v))
}

// IndustryContains applies the Contains predicate on the "industry" field.
func IndustryContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldIndustry, v))
}

// IndustryHasPrefix applies the HasPrefix predicate on the "industry" field.
func IndustryHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldIndustry, v))
}

// IndustryHasSuffix applies the HasSuffix predicate on the "industry" field.
func IndustryHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldIndustry, v))
}

// IndustryEqualFold applies the EqualFold predicate on the "industry" field.
func IndustryEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldIndustry, v))
}

// IndustryContainsFold applies the ContainsFold predicate on the "industry" field.
func IndustryContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldIndustry, v))
}

// ExperienceLevelEQ applies the EQ predicate on the "experience_level" field.
func ExperienceLevelEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldExperienceLevel, v))
}

// ExperienceLevelNEQ applies the NEQ predicate on the "experience_level" field.
func ExperienceLevelNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldExperienceLevel, v))
}

// ExperienceLevelIn applies the In predicate on the "experience_level" field.
func ExperienceLevelIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelNotIn applies the NotIn predicate on the "experience_level" field.
func ExperienceLevelNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelGT applies the GT predicate on the "experience_level" field.
func ExperienceLevelGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldExperienceLevel, v))
}

// ExperienceLevelGTE applies the GTE predicate on the "experience_level" field.
func ExperienceLevelGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldExperienceLevel, v))
}

// ExperienceLevelLT applies the LT predicate on the "experience_level" field.
func ExperienceLevelLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldExperienceLevel, v))
}

// ExperienceLevelLTE applies the LTE predicate on the "experience_level" field.
func ExperienceLevelLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldExperienceLevel, v))
}

// ExperienceLevelContains applies the Contains predicate on the "experience_level" field.
func ExperienceLevelContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldExperienceLevel, v))
}

// ExperienceLevelHasPrefix applies the HasPrefix predicate on the "experience_level" field.
func ExperienceLevelHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldExperienceLevel, v))
}

// ExperienceLevelHasSuffix applies the HasSuffix predicate on the "experience_level" field.
func ExperienceLevelHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldExperienceLevel, v))
}

// ExperienceLevelEqualFold applies the EqualFold predicate on the "experience_level" field.
func ExperienceLevelEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldExperienceLevel, v))
}

// ExperienceLevelContainsFold applies the ContainsFold predicate on the "experience_level" field.
func ExperienceLevelContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldExperienceLevel, v))
}

// PainPointEQ applies the EQ predicate on the "pain_point" field.
func PainPointEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldPainPoint, v))
}

// PainPointNEQ applies the NEQ predicate on the "pain_point" field.
func PainPointNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldPainPoint, v))
}

// PainPointIn applies the In predicate on the "pain_point" field.
func PainPointIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldPainPoint, vs...))
}

// PainPointNotIn applies the NotIn predicate on the "pain_point" field.
func PainPointNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldPainPoint, vs...))
}

// PainPointGT applies the GT predicate on the "pain_point" field.
func PainPointGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldPainPoint, v))
}

// PainPointGTE applies the GTE predicate on the "pain_point" field.
func PainPointGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldPainPoint, v))
}

// PainPointLT applies the LT predicate on the "pain_point" field.
func PainPointLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldPainPoint, v))
}

// PainPointLTE applies the LTE predicate on the "pain_point" field.
func PainPointLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldPainPoint, v))
}

// PainPointContains applies the Contains predicate on the "pain_point" field.
func PainPointContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldPainPoint, v))
}

// PainPointHasPrefix applies the HasPrefix predicate on the "pain_point" field.
func PainPointHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldPainPoint, v))
}

// PainPointHasSuffix applies the HasSuffix predicate on the "pain_point" field.
func PainPointHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldPainPoint, v))
}

// PainPointEqualFold applies the EqualFold predicate on the "pain_point" field.
func PainPointEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldPainPoint, v))
}

// PainPointContainsFold applies the ContainsFold predicate on the "pain_point" field.
func PainPointContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldPainPoint, v))
}

// LearningGoalEQ applies the EQ predicate on the "learning_goal" field.
func LearningGoalEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldLearningGoal, v))
}

// LearningGoalNEQ applies the NEQ predicate on the "learning_goal" field.
func LearningGoalNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldLearningGoal, v))
}

// LearningGoalIn applies the In predicate on the "learning_goal" field.
func LearningGoalIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldLearningGoal, vs...))
}

// LearningGoalNotIn applies the NotIn predicate on the "learning_goal" field.
func LearningGoalNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldLearningGoal, vs...))
}

// LearningGoalGT applies the GT predicate on the "learning_goal" field.
func LearningGoalGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldLearningGoal, v))
}

// LearningGoalGTE applies the GTE predicate on the "learning_goal" field.
func LearningGoalGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldLearningGoal, v))
}

// LearningGoalLT applies the LT predicate on the "learning_goal" field.
func LearningGoalLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldLearningGoal, v))
}

// LearningGoalLTE applies the LTE predicate on the "learning_goal" field.
func LearningGoalLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldLearningGoal, v))
}

// LearningGoalContains applies the Contains predicate on the "learning_goal" field.
func LearningGoalContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldLearningGoal, v))
}

// LearningGoalHasPrefix applies the HasPrefix predicate on the "learning_goal" field.
func LearningGoalHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldLearningGoal, v))
}

// LearningGoalHasSuffix applies the HasSuffix predicate on the "learning_goal" field.
func LearningGoalHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldLearningGoal, v))
}

// LearningGoalEqualFold applies the EqualFold predicate on the "learning_goal" field.
func LearningGoalEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldLearningGoal, v))
}

// LearningGoalContainsFold applies the ContainsFold predicate on the "learning_goal" field.
func LearningGoalContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldLearningGoal, v))
}

// TimeCommitmentEQ applies the EQ predicate on the "time_commitment" field.
func TimeCommitmentEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTimeCommitment, v))
}

// TimeCommitmentNEQ applies the NEQ predicate on the "time_commitment" field.
func TimeCommitmentNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldTimeCommitment, v))
}

// TimeCommitmentIn applies the In predicate on the "time_commitment" field.
func TimeCommitmentIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldTimeCommitment, vs...))
}

// TimeCommitmentNotIn applies the NotIn predicate on the "time_commitment" field.
func TimeCommitmentNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldTimeCommitment, vs...))
}

// TimeCommitmentGT applies the GT predicate on the "time_commitment" field.
func TimeCommitmentGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldTimeCommitment, v))
}

// TimeCommitmentGTE applies the GTE predicate on the "time_commitment" field.
func TimeCommitmentGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldTimeCommitment, v))
}

// TimeCommitmentLT applies the LT predicate on the "time_commitment" field.
func TimeCommitmentLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldTimeCommitment, v))
}

// TimeCommitmentLTE applies the LTE predicate on the "time_commitment" field.
func TimeCommitmentLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldTimeCommitment, v))
}

// TimeCommitmentContains applies the Contains predicate on the "time_commitment" field.
func TimeCommitmentContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldTimeCommitment, v))
}

// TimeCommitmentHasPrefix applies the HasPrefix predicate on the "time_commitment" field.
func TimeCommitmentHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldTimeCommitment, v))
}

// TimeCommitmentHasSuffix applies the HasSuffix predicate on the "time_commitment" field.
func TimeCommitmentHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldTimeCommitment, v))
}

// TimeCommitmentEqualFold applies the EqualFold predicate on the "time_commitment" field.
func TimeCommitmentEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldTimeCommitment, v))
}

// TimeCommitmentContainsFold applies the ContainsFold predicate on the "time_commitment" field.
func TimeCommitmentContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldTimeCommitment, v))
}

// AnnualTurnoverEQ applies the EQ predicate on the "annual_turnover" field.
func AnnualTurnoverEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAnnualTurnover, v))
}

// AnnualTurnoverNEQ applies the NEQ predicate on the "annual_turnover" field.
func AnnualTurnoverNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldAnnualTurnover, v))
}

// AnnualTurnoverIn applies the In predicate on the "annual_turnover" field.
func AnnualTurnoverIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldAnnualTurnover, vs...))
}

// AnnualTurnoverNotIn applies the NotIn predicate on the "annual_turnover" field.
func AnnualTurnoverNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldAnnualTurnover, vs...))
}

// AnnualTurnoverGT applies the GT predicate on the "annual_turnover" field.
func AnnualTurnoverGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldAnnualTurnover, v))
}

// AnnualTurnoverGTE applies the GTE predicate on the "annual_turnover" field.
func AnnualTurnoverGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldAnnualTurnover, v))
}

// AnnualTurnoverLT applies the LT predicate on the "annual_turnover" field.
func AnnualTurnoverLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldAnnualTurnover, v))
}

// AnnualTurnoverLTE applies the LTE predicate on the "annual_turnover" field.
func AnnualTurnoverLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldAnnualTurnover, v))
}

// AnnualTurnoverContains applies the Contains predicate on the "annual_turnover" field.
func AnnualTurnoverContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldAnnualTurnover, v))
}

// AnnualTurnoverHasPrefix applies the HasPrefix predicate on the "annual_turnover" field.
func AnnualTurnoverHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldAnnualTurnover, v))
}

// AnnualTurnoverHasSuffix applies the HasSuffix predicate on the "annual_turnover" field.
func AnnualTurnoverHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldAnnualTurnover, v))
}

// AnnualTurnoverEqualFold applies the EqualFold predicate on the "annual_turnover" field.
func AnnualTurnoverEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldAnnualTurnover, v))
}

// AnnualTurnoverContainsFold applies the ContainsFold predicate on the "annual_turnover" field.
func AnnualTurnoverContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldAnnualTurnover, v))
}

// VatRegisteredEQ applies the EQ predicate on the "vat_registered" field.
func VatRegisteredEQ(v bool) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldVatRegistered, v))
}

// VatRegisteredNEQ applies the NEQ predicate on the "vat_registered" field.
func VatRegisteredNEQ(v bool) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldVatRegistered, v))
}

// MtdStatusEQ applies the EQ predicate on the "mtd_status" field.
func MtdStatusEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldMtdStatus, v))
}

// MtdStatusNEQ applies the NEQ predicate on the "mtd_status" field.
func MtdStatusNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldMtdStatus, v))
}

// MtdStatusIn applies the In predicate on the "mtd_status" field.
func MtdStatusIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldMtdStatus, vs...))
}

// MtdStatusNotIn applies the NotIn predicate on the "mtd_status" field.
func MtdStatusNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldMtdStatus, vs...))
}

// MtdStatusGT applies the GT predicate on the "mtd_status" field.
func MtdStatusGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldMtdStatus, v))
}

// MtdStatusGTE applies the GTE predicate on the "mtd_status" field.
func MtdStatusGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldMtdStatus, v))
}

// MtdStatusLT applies the LT predicate on the "mtd_status" field.
func MtdStatusLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldMtdStatus, v))
}

// MtdStatusLTE applies the LTE predicate on the "mtd_status" field.
func MtdStatusLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldMtdStatus, v))
}

// MtdStatusContains applies the Contains predicate on the "mtd_status" field.
func MtdStatusContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldMtdStatus, v))
}

// MtdStatusHasPrefix applies the HasPrefix predicate on the "mtd_status" field.
func MtdStatusHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldMtdStatus, v))
}

// MtdStatusHasSuffix applies the HasSuffix predicate on the "mtd_status" field.
func MtdStatusHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldMtdStatus, v))
}

// MtdStatusEqualFold applies the EqualFold predicate on the "mtd_status" field.
func MtdStatusEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldMtdStatus, v))
}

// MtdStatusContainsFold applies the ContainsFold predicate on the "mtd_status" field.
func MtdStatusContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldMtdStatus, v))
}

// AccountingYearEndEQ applies the EQ predicate on the "accounting_year_end" field.
func AccountingYearEndEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAccountingYearEnd, v))
}

// AccountingYearEndNEQ applies the NEQ predicate on the "accounting_year_end" field.
func AccountingYearEndNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldAccountingYearEnd, v))
}

// AccountingYearEndIn applies the In predicate on the "accounting_year_end" field.
func AccountingYearEndIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldAccountingYearEnd, vs...))
}

// AccountingYearEndNotIn applies the NotIn predicate on the "accounting_year_end" field.
func AccountingYearEndNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldAccountingYearEnd, vs...))
}

// AccountingYearEndGT applies the GT predicate on the "accounting_year_end" field.
func AccountingYearEndGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldAccountingYearEnd, v))
}

// AccountingYearEndGTE applies the GTE predicate on the "accounting_year_end" field.
func AccountingYearEndGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldAccountingYearEnd, v))
}

// AccountingYearEndLT applies the LT predicate on the "accounting_year_end" field.
func AccountingYearEndLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldAccountingYearEnd, v))
}

// AccountingYearEndLTE applies the LTE predicate on the "accounting_year_end" field.
func AccountingYearEndLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldAccountingYearEnd, v))
}

// AccountingYearEndContains applies the Contains predicate on the "accounting_year_end" field.
func AccountingYearEndContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldAccountingYearEnd, v))
}

// AccountingYearEndHasPrefix applies the HasPrefix predicate on the "accounting_year_end" field.
func AccountingYearEndHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldAccountingYearEnd, v))
}

// AccountingYearEndHasSuffix applies the HasSuffix predicate on the "accounting_year_end" field.
func AccountingYearEndHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldAccountingYearEnd, v))
}

// AccountingYearEndEqualFold applies the EqualFold predicate on the "accounting_year_end" field.
func AccountingYearEndEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldAccountingYearEnd, v))
}

// AccountingYearEndContainsFold applies the ContainsFold predicate on the "accounting_year_end" field.
func AccountingYearEndContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldAccountingYearEnd, v))
}

// NextVatReturnDueEQ applies the EQ predicate on the "next_vat_return_due" field.
func NextVatReturnDueEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldNextVatReturnDue, v))
}

// NextVatReturnDueNEQ applies the NEQ predicate on the "next_vat_return_due" field.
func NextVatReturnDueNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldNextVatReturnDue, v))
}

// NextVatReturnDueIn applies the In predicate on the "next_vat_return_due" field.
func NextVatReturnDueIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldNextVatReturnDue, vs...))
}

// NextVatReturnDueNotIn applies the NotIn predicate on the "next_vat_return_due" field.
func NextVatReturnDueNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldNextVatReturnDue, vs...))
}

// NextVatReturnDueGT applies the GT predicate on the "next_vat_return_due" field.
func NextVatReturnDueGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldNextVatReturnDue, v))
}

// NextVatReturnDueGTE applies the GTE predicate on the "next_vat_return_due" field.
func NextVatReturnDueGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldNextVatReturnDue, v))
}

// NextVatReturnDueLT applies the LT predicate on the "next_vat_return_due" field.
func NextVatReturnDueLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldNextVatReturnDue, v))
}

// NextVatReturnDueLTE applies the LTE predicate on the "next_vat_return_due" field.
func NextVatReturnDueLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldNextVatReturnDue, v))
}

// NextVatReturnDueIsNil applies the IsNil predicate on the "next_vat_return_due" field.
func NextVatReturnDueIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldNextVatReturnDue))
}

// NextVatReturnDueNotNil applies the NotNil predicate on the "next_vat_return_due" field.
func NextVatReturnDueNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldNextVatReturnDue))
}

// TurnoverLastUpdatedEQ applies the EQ predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTurnoverLastUpdated, v))
}

// TurnoverLastUpdatedNEQ applies the NEQ predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldTurnoverLastUpdated, v))
}

// TurnoverLastUpdatedIn applies the In predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldTurnoverLastUpdated, vs...))
}

// TurnoverLastUpdatedNotIn applies the NotIn predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldTurnoverLastUpdated, vs...))
}

// TurnoverLastUpdatedGT applies the GT predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldTurnoverLastUpdated, v))
}

// TurnoverLastUpdatedGTE applies the GTE predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldTurnoverLastUpdated, v))
}

// TurnoverLastUpdatedLT applies the LT predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldTurnoverLastUpdated, v))
}

// TurnoverLastUpdatedLTE applies the LTE predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldTurnoverLastUpdated, v))
}

// TurnoverLastUpdatedIsNil applies the IsNil predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldTurnoverLastUpdated))
}

// TurnoverLastUpdatedNotNil applies the NotNil predicate on the "turnover_last_updated" field.
func TurnoverLastUpdatedNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldTurnoverLastUpdated))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.NotPredicates(p))
}
