package store

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/youngtekkie/tekkie/ent"
	entledger "github.com/youngtekkie/tekkie/ent/ledger"
)

// ledgerRepo implements LedgerRepo using the ent client.
type ledgerRepo struct {
	client *ent.Client
}

func (r *ledgerRepo) Load(ctx context.Context, profileID string) (LedgerFlags, error) {
	rec, err := r.client.Ledger.Query().
		Where(entledger.ProfileIDEQ(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return LedgerFlags{}, nil
		}
		// An unreadable row degrades to an empty ledger rather than
		// blocking every progress query for the profile.
		log.Warn("ledger row unreadable, treating as empty", "profile", profileID, "err", err)
		return LedgerFlags{}, nil
	}
	if rec.Flags == nil {
		return LedgerFlags{}, nil
	}
	return LedgerFlags(rec.Flags), nil
}

func (r *ledgerRepo) Save(ctx context.Context, profileID string, flags LedgerFlags) error {
	if flags == nil {
		flags = LedgerFlags{}
	}

	existing, err := r.client.Ledger.Query().
		Where(entledger.ProfileIDEQ(profileID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query ledger: %w", err)
		}
		_, err = r.client.Ledger.Create().
			SetProfileID(profileID).
			SetFlags(flags).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create ledger: %w", err)
		}
		return nil
	}

	_, err = r.client.Ledger.UpdateOne(existing).
		SetFlags(flags).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}
	return nil
}

func (r *ledgerRepo) Delete(ctx context.Context, profileID string) error {
	_, err := r.client.Ledger.Delete().
		Where(entledger.ProfileIDEQ(profileID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	return nil
}
