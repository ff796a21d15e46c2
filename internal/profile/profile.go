// Package profile manages the set of tracked children and the active
// profile pointer.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/store"
)

// DateLayout is the persisted start-date format.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyName rejects blank display names.
	ErrEmptyName = errors.New("profile name must not be empty")
	// ErrNotFound marks operations addressed to an unknown profile.
	ErrNotFound = errors.New("profile not found")
)

// Profile is the domain view of a tracked child.
type Profile struct {
	ID          string
	DisplayName string
	Variant     curriculum.Variant
	// StartDate is nil when the profile has no real-world schedule.
	StartDate *time.Time
	Grade     int
	CreatedAt time.Time
}

// VariantForGrade derives the curriculum variant from a school grade.
// Grade 3 and below get the junior content set.
func VariantForGrade(grade int) curriculum.Variant {
	if grade > 0 && grade <= 3 {
		return curriculum.VariantJunior
	}
	return curriculum.VariantStandard
}

// Service owns profile records, the active pointer, and the ledger
// cascade on delete.
type Service struct {
	profiles store.ProfileRepo
	ledgers  store.LedgerRepo
	settings store.SettingsRepo
	events   store.TickEventRepo
}

// NewService returns a profile service over the given repositories.
// events may be nil when no activity log is kept.
func NewService(profiles store.ProfileRepo, ledgers store.LedgerRepo, settings store.SettingsRepo, events store.TickEventRepo) *Service {
	return &Service{profiles: profiles, ledgers: ledgers, settings: settings, events: events}
}

// Create adds a new profile and makes it active when it is the first
// one. The variant is derived from the grade at creation time.
func (s *Service) Create(ctx context.Context, name string, grade int, startDate string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	rec := &store.Profile{
		ID:          uuid.NewString(),
		DisplayName: name,
		Variant:     string(VariantForGrade(grade)),
		StartDate:   normalizeDate(startDate),
		Grade:       grade,
		CreatedAt:   time.Now(),
	}
	if err := s.profiles.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	existing, err := s.profiles.List(ctx)
	if err == nil && len(existing) == 1 {
		if err := s.settings.Set(ctx, store.SettingActiveProfile, rec.ID); err != nil {
			return nil, fmt.Errorf("setting active profile: %w", err)
		}
	}
	return fromRecord(rec), nil
}

// Get returns a profile by ID, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	rec, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return fromRecord(rec), nil
}

// List returns all profiles in creation order.
func (s *Service) List(ctx context.Context) ([]*Profile, error) {
	recs, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Profile, 0, len(recs))
	for _, r := range recs {
		out = append(out, fromRecord(r))
	}
	return out, nil
}

// Rename changes a profile's display name.
func (s *Service) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	rec, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	rec.DisplayName = name
	return s.profiles.Update(ctx, rec)
}

// SetGrade updates a profile's grade and re-derives its variant. The
// ledger is untouched; completed lessons stay completed.
func (s *Service) SetGrade(ctx context.Context, id string, grade int) error {
	rec, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	rec.Grade = grade
	rec.Variant = string(VariantForGrade(grade))
	return s.profiles.Update(ctx, rec)
}

// SetStartDate sets or clears a profile's schedule start date. Pass an
// empty string to clear it.
func (s *Service) SetStartDate(ctx context.Context, id, date string) error {
	rec, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	rec.StartDate = normalizeDate(date)
	return s.profiles.Update(ctx, rec)
}

// Delete removes a profile and its ledger. The active pointer is
// cleared when it referenced the deleted profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.ledgers.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting ledger: %w", err)
	}
	if s.events != nil {
		if err := s.events.DeleteFor(ctx, id); err != nil {
			return fmt.Errorf("deleting activity log: %w", err)
		}
	}
	if err := s.profiles.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if active, ok, err := s.settings.Get(ctx, store.SettingActiveProfile); err == nil && ok && active == id {
		return s.settings.Delete(ctx, store.SettingActiveProfile)
	}
	return nil
}

// SetActive points subsequent commands at the given profile.
func (s *Service) SetActive(ctx context.Context, id string) error {
	rec, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	return s.settings.Set(ctx, store.SettingActiveProfile, rec.ID)
}

// Active returns the active profile, or nil when none is set. A stale
// pointer at a deleted profile reads as none.
func (s *Service) Active(ctx context.Context) (*Profile, error) {
	id, ok, err := s.settings.Get(ctx, store.SettingActiveProfile)
	if err != nil || !ok {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Resolve finds a profile by ID or by case-insensitive display name.
func (s *Service) Resolve(ctx context.Context, ref string) (*Profile, error) {
	if p, err := s.Get(ctx, ref); err != nil || p != nil {
		return p, err
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if strings.EqualFold(p.DisplayName, ref) {
			return p, nil
		}
	}
	return nil, nil
}

func (s *Service) mustGet(ctx context.Context, id string) (*store.Profile, error) {
	rec, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, nil
}

// normalizeDate keeps only dates in the persisted layout. Anything
// unparsable is stored as empty, leaving the profile schedule-less.
func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format(DateLayout)
}

func fromRecord(rec *store.Profile) *Profile {
	p := &Profile{
		ID:          rec.ID,
		DisplayName: rec.DisplayName,
		Variant:     curriculum.Variant(rec.Variant),
		Grade:       rec.Grade,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.StartDate != "" {
		if t, err := time.Parse(DateLayout, rec.StartDate); err == nil {
			p.StartDate = &t
		}
	}
	return p
}
