// Package profile defines the normalized user business profile consumed by
// the trigger evaluators, the lesson scorer and the recommendation
// aggregator. Free-text fields from signup are parsed once, here, into
// tagged values so the rule code never sees raw strings.
package profile

import "time"

// BusinessStructure is the legal form of the user's business. The zero
// value is StructureUnknown, so a profile that was never saved (or that
// failed to load) behaves exactly like one where the user skipped the
// question.
type BusinessStructure string

const (
	StructureUnknown BusinessStructure = ""
	SoleTrader       BusinessStructure = "sole_trader"
	LimitedCompany   BusinessStructure = "limited_company"
	Partnership      BusinessStructure = "partnership"
)

// ParseBusinessStructure normalizes free-text structure labels. Anything
// unrecognized maps to StructureUnknown rather than an error.
func ParseBusinessStructure(s string) BusinessStructure {
	switch normalize(s) {
	case "sole_trader", "sole trader", "soletrader":
		return SoleTrader
	case "limited_company", "limited company", "ltd", "limited":
		return LimitedCompany
	case "partnership":
		return Partnership
	default:
		return StructureUnknown
	}
}

// MTDStatus is the user's Making Tax Digital position.
type MTDStatus string

const (
	MTDNotRequired MTDStatus = "not_required"
	MTDRequired    MTDStatus = "required"
	MTDCompliant   MTDStatus = "compliant"
	MTDEnrolled    MTDStatus = "enrolled"
)

// TimeCommitment is the user's declared learning time preference.
type TimeCommitment string

const (
	Commitment15  TimeCommitment = "15_minutes"
	Commitment30  TimeCommitment = "30_minutes"
	Commitment60  TimeCommitment = "1_hour"
	Commitment120 TimeCommitment = "2_hours"
)

// Minutes maps a time commitment to a session budget in minutes.
// Unknown values fall back to 30.
func (tc TimeCommitment) Minutes() int {
	switch tc {
	case Commitment15:
		return 15
	case Commitment30:
		return 30
	case Commitment60:
		return 60
	case Commitment120:
		return 120
	default:
		return 30
	}
}

// Profile is a read-only snapshot of the user's business and learning
// context. A zero field means the user has not supplied it; every
// consumer treats missing data as "check not applicable", never as a
// worst-case default.
type Profile struct {
	BusinessStructure BusinessStructure
	Industry          string
	ExperienceLevel   string
	PainPoint         string
	LearningGoal      string
	TimeCommitment    TimeCommitment

	// AnnualTurnover is parsed from the raw signup string at load time.
	AnnualTurnover Turnover

	VATRegistered bool
	MTDStatus     MTDStatus

	// AccountingYearEnd resolves named options and raw ISO dates alike.
	AccountingYearEnd YearEnd

	// NextVATReturnDue is nil when the user has not set one.
	NextVATReturnDue *time.Time

	// TurnoverLastUpdated is nil when turnover has never been supplied.
	TurnoverLastUpdated *time.Time
}
