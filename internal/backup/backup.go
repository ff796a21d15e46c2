// Package backup exports and imports all profiles and ledgers as one
// JSON document, so a parent can move progress between machines or keep
// a safety copy.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/youngtekkie/tekkie/internal/store"
)

// FormatVersion identifies the backup document layout.
const FormatVersion = 1

// Document is the exported container.
type Document struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Profiles   []ProfileRecord `json:"profiles"`
}

// ProfileRecord pairs one profile with its completion ledger.
type ProfileRecord struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Variant     string            `json:"variant"`
	StartDate   string            `json:"start_date,omitempty"`
	Grade       int               `json:"grade,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	Ledger      store.LedgerFlags `json:"ledger"`
}

// Service reads and writes backup documents against the repositories.
type Service struct {
	profiles store.ProfileRepo
	ledgers  store.LedgerRepo
}

// NewService returns a backup service over the given repositories.
func NewService(profiles store.ProfileRepo, ledgers store.LedgerRepo) *Service {
	return &Service{profiles: profiles, ledgers: ledgers}
}

// Export collects every profile and its ledger into one document.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	recs, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	doc := &Document{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC(),
		Profiles:   make([]ProfileRecord, 0, len(recs)),
	}
	for _, rec := range recs {
		flags, err := s.ledgers.Load(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("loading ledger for %s: %w", rec.ID, err)
		}
		doc.Profiles = append(doc.Profiles, ProfileRecord{
			ID:          rec.ID,
			DisplayName: rec.DisplayName,
			Variant:     rec.Variant,
			StartDate:   rec.StartDate,
			Grade:       rec.Grade,
			CreatedAt:   rec.CreatedAt,
			Ledger:      flags,
		})
	}
	return doc, nil
}

// ExportJSON serializes the backup document with indentation for
// hand-inspection.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	doc, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import validates raw JSON and merges its profiles into the store.
// Existing profiles with matching IDs are overwritten, including their
// ledgers; unknown IDs are created. Profiles not named in the document
// are left alone.
func (s *Service) Import(ctx context.Context, raw []byte) (int, error) {
	if err := validateDocument(raw); err != nil {
		return 0, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("decoding backup: %w", err)
	}
	if doc.Version != FormatVersion {
		return 0, fmt.Errorf("unsupported backup version %d", doc.Version)
	}

	imported := 0
	for _, pr := range doc.Profiles {
		rec := &store.Profile{
			ID:          pr.ID,
			DisplayName: pr.DisplayName,
			Variant:     pr.Variant,
			StartDate:   pr.StartDate,
			Grade:       pr.Grade,
			CreatedAt:   pr.CreatedAt,
		}
		existing, err := s.profiles.Get(ctx, pr.ID)
		if err != nil {
			return imported, fmt.Errorf("looking up %s: %w", pr.ID, err)
		}
		if existing == nil {
			err = s.profiles.Save(ctx, rec)
		} else {
			err = s.profiles.Update(ctx, rec)
		}
		if err != nil {
			return imported, fmt.Errorf("writing profile %s: %w", pr.ID, err)
		}

		flags := pr.Ledger
		if flags == nil {
			flags = store.LedgerFlags{}
		}
		if err := s.ledgers.Save(ctx, pr.ID, flags); err != nil {
			return imported, fmt.Errorf("writing ledger for %s: %w", pr.ID, err)
		}
		imported++
	}
	return imported, nil
}
