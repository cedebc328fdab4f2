package store

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn/ent"
	"github.com/finlearn/finlearn/ent/groupdismissal"
)

// dismissalRepo implements DismissalRepo.
type dismissalRepo struct {
	client *ent.Client
}

func (r *dismissalRepo) Dismissed(ctx context.Context) (map[string]bool, error) {
	ids, err := r.client.GroupDismissal.Query().
		Select(groupdismissal.FieldGroupID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query dismissals: %w", err)
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *dismissalRepo) Dismiss(ctx context.Context, groupID string) error {
	exists, err := r.client.GroupDismissal.Query().
		Where(groupdismissal.GroupID(groupID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query dismissal %s: %w", groupID, err)
	}
	if exists {
		return nil
	}

	_, err = r.client.GroupDismissal.Create().
		SetGroupID(groupID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save dismissal %s: %w", groupID, err)
	}
	return nil
}
