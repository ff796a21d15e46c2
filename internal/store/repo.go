package store

import (
	"context"
	"time"
)

// Profile is the persisted record for one tracked child.
type Profile struct {
	ID          string
	DisplayName string
	Variant     string
	StartDate   string // YYYY-MM-DD, empty when the profile has no schedule
	Grade       int
	CreatedAt   time.Time
}

// LedgerFlags is a full per-profile completion ledger: lesson ordinal
// (stringified for JSON storage) to sub-task flag map. Absent ordinals
// mean "nothing ticked yet".
type LedgerFlags map[string]map[string]bool

// Well-known settings keys.
const (
	SettingActiveProfile = "active_profile"
	SettingRestricted    = "restricted"
	SettingGateSecret    = "gate_secret"
)

// ProfileRepo manages profile records.
type ProfileRepo interface {
	// Save stores a new profile.
	Save(ctx context.Context, p *Profile) error

	// Update rewrites the mutable fields of an existing profile.
	// Unknown IDs are a silent no-op.
	Update(ctx context.Context, p *Profile) error

	// Get returns a profile by ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Profile, error)

	// List returns all profiles in creation order.
	List(ctx context.Context) ([]*Profile, error)

	// Delete removes a profile. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error
}

// LedgerRepo persists per-profile completion ledgers. Each profile's
// ledger is one document; Save replaces it whole so a concurrent read
// of the same profile never observes a partial write.
type LedgerRepo interface {
	// Load returns the ledger for a profile. Missing or unreadable
	// rows degrade to an empty ledger.
	Load(ctx context.Context, profileID string) (LedgerFlags, error)

	// Save upserts the full ledger for a profile.
	Save(ctx context.Context, profileID string, flags LedgerFlags) error

	// Delete removes the ledger row for a profile. No-op when absent.
	Delete(ctx context.Context, profileID string) error
}

// TickEvent is one recorded flag change, for the activity log.
type TickEvent struct {
	ProfileID string
	Ordinal   int
	Flag      string
	Value     bool
	At        time.Time
}

// TickEventRepo is an append-only log of ledger flag changes.
type TickEventRepo interface {
	// Append records one flag change.
	Append(ctx context.Context, ev TickEvent) error

	// Recent returns up to limit events for a profile, newest first.
	Recent(ctx context.Context, profileID string, limit int) ([]TickEvent, error)

	// DeleteFor removes all events for a profile. No-op when absent.
	DeleteFor(ctx context.Context, profileID string) error
}

// SettingsRepo is a small key/value store for app-level state.
type SettingsRepo interface {
	// Get returns the value for key; ok is false when unset.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set upserts the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. No-op when absent.
	Delete(ctx context.Context, key string) error
}
