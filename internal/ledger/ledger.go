// Package ledger tracks per-profile sub-task completion flags keyed by
// lesson ordinal. The flag key set is fixed: every lesson has the same
// four sub-tasks, and a lesson is complete when all four are set.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/store"
)

// The fixed sub-task flag keys.
const (
	FlagBuild     = "build"
	FlagReasoning = "reasoning"
	FlagTyping    = "typing"
	FlagPresented = "presented"
)

// ErrUnknownFlag is returned for flag keys outside the fixed set.
var ErrUnknownFlag = errors.New("unknown flag key")

// ErrBadOrdinal is returned for ordinals outside the curriculum.
var ErrBadOrdinal = errors.New("ordinal outside curriculum")

// AllFlags returns the flag keys in display order.
func AllFlags() []string {
	return []string{FlagBuild, FlagReasoning, FlagTyping, FlagPresented}
}

// ValidFlag reports whether key is one of the fixed flag keys.
func ValidFlag(key string) bool {
	switch key {
	case FlagBuild, FlagReasoning, FlagTyping, FlagPresented:
		return true
	}
	return false
}

// FlagDisplayName returns a short label for a flag key.
func FlagDisplayName(key string) string {
	switch key {
	case FlagBuild:
		return "Main done"
	case FlagReasoning:
		return "Logic done"
	case FlagTyping:
		return "Typing done"
	case FlagPresented:
		return "Presented / explained"
	default:
		return key
	}
}

// View is an immutable snapshot of one profile's ledger. Absent ordinals
// read as all-false; "not yet started" and "explicitly unticked" are
// indistinguishable by design.
type View struct {
	flags map[int]map[string]bool
}

// Flag returns the value of one sub-task flag, defaulting to false.
func (v View) Flag(ordinal int, key string) bool {
	return v.flags[ordinal][key]
}

// Complete reports whether all four flags are set for an ordinal.
func (v View) Complete(ordinal int) bool {
	f := v.flags[ordinal]
	if f == nil {
		return false
	}
	for _, key := range AllFlags() {
		if !f[key] {
			return false
		}
	}
	return true
}

// Empty reports whether no flag is set anywhere.
func (v View) Empty() bool {
	return len(v.flags) == 0
}

// HighestTicked returns the largest ordinal with at least one flag set,
// or 0 when the ledger is empty.
func (v View) HighestTicked() int {
	highest := 0
	for ordinal, f := range v.flags {
		if ordinal <= highest {
			continue
		}
		for _, set := range f {
			if set {
				highest = ordinal
				break
			}
		}
	}
	return highest
}

// NewView builds a View from an ordinal-keyed flag map. Intended for
// tests and in-memory callers; persistence goes through Service.
func NewView(flags map[int]map[string]bool) View {
	if flags == nil {
		flags = map[int]map[string]bool{}
	}
	return View{flags: flags}
}

// Service reads and writes per-profile ledgers through a LedgerRepo.
// Every write persists the full per-profile document so no partial
// state is observable for that profile. When an event repo is attached,
// each flag change is also appended to the activity log.
type Service struct {
	repo   store.LedgerRepo
	events store.TickEventRepo
}

// NewService creates a ledger service backed by repo. events may be nil
// to disable the activity log.
func NewService(repo store.LedgerRepo, events store.TickEventRepo) *Service {
	return &Service{repo: repo, events: events}
}

// SetFlag sets one sub-task flag and persists the whole ledger for the
// profile. Unknown keys and out-of-range ordinals are rejected without
// touching any stored state.
func (s *Service) SetFlag(ctx context.Context, profileID string, ordinal int, key string, value bool) error {
	if !ValidFlag(key) {
		return fmt.Errorf("%w: %q", ErrUnknownFlag, key)
	}
	if ordinal < 1 || ordinal > curriculum.TotalLessons {
		return fmt.Errorf("%w: %d", ErrBadOrdinal, ordinal)
	}

	flags, err := s.repo.Load(ctx, profileID)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	k := strconv.Itoa(ordinal)
	day := flags[k]
	if day == nil {
		if !value {
			return nil // nothing to clear
		}
		day = map[string]bool{}
		flags[k] = day
	}
	day[key] = value

	// Keep the document sparse: drop all-false entries.
	if !value {
		empty := true
		for _, set := range day {
			if set {
				empty = false
				break
			}
		}
		if empty {
			delete(flags, k)
		}
	}

	if err := s.repo.Save(ctx, profileID, flags); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	// The ledger write already succeeded; a lost activity row is not
	// worth failing the tick over.
	if s.events != nil {
		ev := store.TickEvent{ProfileID: profileID, Ordinal: ordinal, Flag: key, Value: value}
		if err := s.events.Append(ctx, ev); err != nil {
			log.Warn("activity log append failed", "profile", profileID, "err", err)
		}
	}
	return nil
}

// Recent returns up to limit activity log entries for a profile, newest
// first. Without an event repo it returns nothing.
func (s *Service) Recent(ctx context.Context, profileID string, limit int) ([]store.TickEvent, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.Recent(ctx, profileID, limit)
}

// View loads the ledger snapshot for a profile. Missing profiles and
// unreadable rows read as empty.
func (s *Service) View(ctx context.Context, profileID string) (View, error) {
	raw, err := s.repo.Load(ctx, profileID)
	if err != nil {
		return NewView(nil), fmt.Errorf("load ledger: %w", err)
	}

	flags := make(map[int]map[string]bool, len(raw))
	for k, day := range raw {
		ordinal, err := strconv.Atoi(k)
		if err != nil || ordinal < 1 || ordinal > curriculum.TotalLessons {
			continue // tolerate stray keys rather than failing the whole ledger
		}
		copied := make(map[string]bool, len(day))
		for key, set := range day {
			if ValidFlag(key) {
				copied[key] = set
			}
		}
		flags[ordinal] = copied
	}
	return View{flags: flags}, nil
}

// Reset clears the entire ledger and activity log for one profile.
// Other profiles are unaffected.
func (s *Service) Reset(ctx context.Context, profileID string) error {
	if err := s.repo.Save(ctx, profileID, store.LedgerFlags{}); err != nil {
		return fmt.Errorf("reset ledger: %w", err)
	}
	return s.purgeEvents(ctx, profileID)
}

// Delete removes the ledger row and activity log entirely. Used by
// profile deletion.
func (s *Service) Delete(ctx context.Context, profileID string) error {
	if err := s.repo.Delete(ctx, profileID); err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	return s.purgeEvents(ctx, profileID)
}

func (s *Service) purgeEvents(ctx context.Context, profileID string) error {
	if s.events == nil {
		return nil
	}
	if err := s.events.DeleteFor(ctx, profileID); err != nil {
		return fmt.Errorf("purge activity log: %w", err)
	}
	return nil
}
