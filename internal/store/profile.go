package store

import (
	"context"
	"fmt"

	"github.com/youngtekkie/tekkie/ent"
	entprofile "github.com/youngtekkie/tekkie/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	_, err := r.client.Profile.Create().
		SetProfileID(p.ID).
		SetDisplayName(p.DisplayName).
		SetVariant(p.Variant).
		SetStartDate(p.StartDate).
		SetGrade(p.Grade).
		SetCreatedAt(p.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.client.Profile.Update().
		Where(entprofile.ProfileIDEQ(p.ID)).
		SetDisplayName(p.DisplayName).
		SetVariant(p.Variant).
		SetStartDate(p.StartDate).
		SetGrade(p.Grade).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	rec, err := r.client.Profile.Query().
		Where(entprofile.ProfileIDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return entToProfile(rec), nil
}

func (r *profileRepo) List(ctx context.Context) ([]*Profile, error) {
	recs, err := r.client.Profile.Query().
		Order(ent.Asc(entprofile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	out := make([]*Profile, len(recs))
	for i, rec := range recs {
		out[i] = entToProfile(rec)
	}
	return out, nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Profile.Delete().
		Where(entprofile.ProfileIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func entToProfile(rec *ent.Profile) *Profile {
	return &Profile{
		ID:          rec.ProfileID,
		DisplayName: rec.DisplayName,
		Variant:     rec.Variant,
		StartDate:   rec.StartDate,
		Grade:       rec.Grade,
		CreatedAt:   rec.CreatedAt,
	}
}
