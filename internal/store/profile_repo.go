package store

import (
	"context"
	"fmt"
	"time"

	"github.com/finlearn/finlearn/ent"
	"github.com/finlearn/finlearn/internal/profile"
)

// profileRepo implements ProfileRepo over the singleton user_profiles row.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context) (profile.Profile, error) {
	data, err := r.Raw(ctx)
	if err != nil {
		return profile.Profile{}, err
	}
	if data == nil {
		return profile.Profile{}, nil
	}
	return normalize(*data), nil
}

func (r *profileRepo) Raw(ctx context.Context) (*ProfileData, error) {
	row, err := r.client.UserProfile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &ProfileData{
		BusinessStructure:   row.BusinessStructure,
		Industry:            row.Industry,
		ExperienceLevel:     row.ExperienceLevel,
		PainPoint:           row.PainPoint,
		LearningGoal:        row.LearningGoal,
		TimeCommitment:      row.TimeCommitment,
		AnnualTurnover:      row.AnnualTurnover,
		VATRegistered:       row.VatRegistered,
		MTDStatus:           row.MtdStatus,
		AccountingYearEnd:   row.AccountingYearEnd,
		NextVATReturnDue:    row.NextVatReturnDue,
		TurnoverLastUpdated: row.TurnoverLastUpdated,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, data ProfileData) error {
	existing, err := r.client.UserProfile.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	turnoverUpdated := data.TurnoverLastUpdated
	if data.AnnualTurnover != "" {
		switch {
		case existing == nil, existing.AnnualTurnover != data.AnnualTurnover:
			now := time.Now()
			turnoverUpdated = &now
		case turnoverUpdated == nil:
			turnoverUpdated = existing.TurnoverLastUpdated
		}
	}

	if existing == nil {
		_, err = r.client.UserProfile.Create().
			SetBusinessStructure(data.BusinessStructure).
			SetIndustry(data.Industry).
			SetExperienceLevel(data.ExperienceLevel).
			SetPainPoint(data.PainPoint).
			SetLearningGoal(data.LearningGoal).
			SetTimeCommitment(data.TimeCommitment).
			SetAnnualTurnover(data.AnnualTurnover).
			SetVatRegistered(data.VATRegistered).
			SetMtdStatus(data.MTDStatus).
			SetAccountingYearEnd(data.AccountingYearEnd).
			SetNillableNextVatReturnDue(data.NextVATReturnDue).
			SetNillableTurnoverLastUpdated(turnoverUpdated).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetBusinessStructure(data.BusinessStructure).
		SetIndustry(data.Industry).
		SetExperienceLevel(data.ExperienceLevel).
		SetPainPoint(data.PainPoint).
		SetLearningGoal(data.LearningGoal).
		SetTimeCommitment(data.TimeCommitment).
		SetAnnualTurnover(data.AnnualTurnover).
		SetVatRegistered(data.VATRegistered).
		SetMtdStatus(data.MTDStatus).
		SetAccountingYearEnd(data.AccountingYearEnd).
		SetNillableNextVatReturnDue(data.NextVATReturnDue).
		SetNillableTurnoverLastUpdated(turnoverUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// normalize resolves the raw stored strings into the typed profile the
// evaluators consume. Parsing happens here, once, at the data-model
// boundary.
func normalize(data ProfileData) profile.Profile {
	return profile.Profile{
		BusinessStructure:   profile.ParseBusinessStructure(data.BusinessStructure),
		Industry:            data.Industry,
		ExperienceLevel:     data.ExperienceLevel,
		PainPoint:           data.PainPoint,
		LearningGoal:        data.LearningGoal,
		TimeCommitment:      profile.TimeCommitment(data.TimeCommitment),
		AnnualTurnover:      profile.ResolveTurnover(data.AnnualTurnover),
		VATRegistered:       data.VATRegistered,
		MTDStatus:           profile.MTDStatus(data.MTDStatus),
		AccountingYearEnd:   profile.ParseYearEnd(data.AccountingYearEnd),
		NextVATReturnDue:    data.NextVATReturnDue,
		TurnoverLastUpdated: data.TurnoverLastUpdated,
	}
}
