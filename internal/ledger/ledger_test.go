package ledger

import (
	"context"
	"testing"

	"github.com/youngtekkie/tekkie/internal/store"
)

// memLedgerRepo is an in-memory LedgerRepo for tests.
type memLedgerRepo struct {
	docs  map[string]store.LedgerFlags
	saves int
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{docs: map[string]store.LedgerFlags{}}
}

func (m *memLedgerRepo) Load(ctx context.Context, profileID string) (store.LedgerFlags, error) {
	doc, ok := m.docs[profileID]
	if !ok {
		return store.LedgerFlags{}, nil
	}
	// Deep copy, as a real store would deserialize a fresh document.
	out := store.LedgerFlags{}
	for k, day := range doc {
		copied := map[string]bool{}
		for key, set := range day {
			copied[key] = set
		}
		out[k] = copied
	}
	return out, nil
}

func (m *memLedgerRepo) Save(ctx context.Context, profileID string, flags store.LedgerFlags) error {
	m.docs[profileID] = flags
	m.saves++
	return nil
}

func (m *memLedgerRepo) Delete(ctx context.Context, profileID string) error {
	delete(m.docs, profileID)
	return nil
}

func completeLesson(t *testing.T, s *Service, profileID string, ordinal int) {
	t.Helper()
	for _, key := range AllFlags() {
		if err := s.SetFlag(context.Background(), profileID, ordinal, key, true); err != nil {
			t.Fatalf("set %s on %d: %v", key, ordinal, err)
		}
	}
}

func TestSetFlagAndComplete(t *testing.T) {
	s := NewService(newMemLedgerRepo(), nil)
	ctx := context.Background()

	v, err := s.View(ctx, "p1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !v.Empty() {
		t.Fatal("fresh ledger not empty")
	}
	if v.Complete(1) {
		t.Fatal("absent ordinal reads complete")
	}

	if err := s.SetFlag(ctx, "p1", 1, FlagBuild, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, _ = s.View(ctx, "p1")
	if !v.Flag(1, FlagBuild) {
		t.Error("build flag not set")
	}
	if v.Flag(1, FlagTyping) {
		t.Error("typing flag set unexpectedly")
	}
	if v.Complete(1) {
		t.Error("one flag should not complete a lesson")
	}

	completeLesson(t, s, "p1", 1)
	v, _ = s.View(ctx, "p1")
	if !v.Complete(1) {
		t.Error("all four flags should complete the lesson")
	}
}

func TestSetFlagIdempotent(t *testing.T) {
	repo := newMemLedgerRepo()
	s := NewService(repo, nil)
	ctx := context.Background()

	if err := s.SetFlag(ctx, "p1", 3, FlagTyping, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetFlag(ctx, "p1", 3, FlagTyping, true); err != nil {
		t.Fatalf("repeat set: %v", err)
	}

	v, _ := s.View(ctx, "p1")
	if !v.Flag(3, FlagTyping) {
		t.Error("flag lost after repeated set")
	}
	if v.Complete(3) {
		t.Error("lesson complete after single flag")
	}
}

func TestSetFlagUnknownKeyRejected(t *testing.T) {
	s := NewService(newMemLedgerRepo(), nil)
	ctx := context.Background()

	if err := s.SetFlag(ctx, "p1", 1, FlagBuild, true); err != nil {
		t.Fatalf("set: %v", err)
	}

	err := s.SetFlag(ctx, "p1", 1, "homework", true)
	if err == nil {
		t.Fatal("expected error for unknown flag key")
	}

	// Other keys are untouched.
	v, _ := s.View(ctx, "p1")
	if !v.Flag(1, FlagBuild) {
		t.Error("existing flag corrupted by rejected write")
	}
}

func TestSetFlagOrdinalBounds(t *testing.T) {
	s := NewService(newMemLedgerRepo(), nil)
	ctx := context.Background()

	for _, bad := range []int{0, -1, 73, 1000} {
		if err := s.SetFlag(ctx, "p1", bad, FlagBuild, true); err == nil {
			t.Errorf("SetFlag(ordinal=%d) succeeded, want error", bad)
		}
	}
}

func TestUntickKeepsDocumentSparse(t *testing.T) {
	repo := newMemLedgerRepo()
	s := NewService(repo, nil)
	ctx := context.Background()

	if err := s.SetFlag(ctx, "p1", 2, FlagBuild, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetFlag(ctx, "p1", 2, FlagBuild, false); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if len(repo.docs["p1"]) != 0 {
		t.Errorf("all-false entry kept in document: %+v", repo.docs["p1"])
	}

	// Clearing an absent flag avoids a pointless write.
	before := repo.saves
	if err := s.SetFlag(ctx, "p1", 5, FlagTyping, false); err != nil {
		t.Fatalf("clear absent: %v", err)
	}
	if repo.saves != before {
		t.Error("clearing an absent flag persisted the ledger")
	}
}

func TestResetClearsOnlyOneProfile(t *testing.T) {
	s := NewService(newMemLedgerRepo(), nil)
	ctx := context.Background()

	completeLesson(t, s, "a", 1)
	completeLesson(t, s, "b", 1)

	if err := s.Reset(ctx, "a"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	va, _ := s.View(ctx, "a")
	if !va.Empty() {
		t.Error("profile a ledger not cleared")
	}
	vb, _ := s.View(ctx, "b")
	if !vb.Complete(1) {
		t.Error("profile b ledger affected by a's reset")
	}
}

func TestViewHighestTicked(t *testing.T) {
	s := NewService(newMemLedgerRepo(), nil)
	ctx := context.Background()

	v, _ := s.View(ctx, "p1")
	if got := v.HighestTicked(); got != 0 {
		t.Errorf("empty ledger HighestTicked = %d, want 0", got)
	}

	if err := s.SetFlag(ctx, "p1", 4, FlagBuild, true); err != nil {
		t.Fatal(err)
	}
	completeLesson(t, s, "p1", 12)
	if err := s.SetFlag(ctx, "p1", 7, FlagReasoning, true); err != nil {
		t.Fatal(err)
	}

	v, _ = s.View(ctx, "p1")
	if got := v.HighestTicked(); got != 12 {
		t.Errorf("HighestTicked = %d, want 12", got)
	}
}

func TestViewToleratesStrayStoredKeys(t *testing.T) {
	repo := newMemLedgerRepo()
	repo.docs["p1"] = store.LedgerFlags{
		"1":    {FlagBuild: true, FlagReasoning: true, FlagTyping: true, FlagPresented: true},
		"zero": {FlagBuild: true},
		"999":  {FlagBuild: true},
		"2":    {"stray": true, FlagBuild: true},
	}
	s := NewService(repo, nil)

	v, err := s.View(context.Background(), "p1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !v.Complete(1) {
		t.Error("valid entry lost while filtering stray keys")
	}
	if !v.Flag(2, FlagBuild) {
		t.Error("valid flag lost from entry with a stray key")
	}
	if v.Flag(2, "stray") {
		t.Error("stray flag key survived")
	}
}

// memEventRepo is an in-memory TickEventRepo for tests.
type memEventRepo struct {
	events []store.TickEvent
}

func (m *memEventRepo) Append(ctx context.Context, ev store.TickEvent) error {
	m.events = append(m.events, ev)
	return nil
}

func (m *memEventRepo) Recent(ctx context.Context, profileID string, limit int) ([]store.TickEvent, error) {
	var out []store.TickEvent
	for i := len(m.events) - 1; i >= 0; i-- {
		if m.events[i].ProfileID != profileID {
			continue
		}
		out = append(out, m.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memEventRepo) DeleteFor(ctx context.Context, profileID string) error {
	kept := m.events[:0]
	for _, ev := range m.events {
		if ev.ProfileID != profileID {
			kept = append(kept, ev)
		}
	}
	m.events = kept
	return nil
}

func TestActivityLogRecordsFlagChanges(t *testing.T) {
	events := &memEventRepo{}
	s := NewService(newMemLedgerRepo(), events)
	ctx := context.Background()

	if err := s.SetFlag(ctx, "p1", 3, FlagBuild, true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFlag(ctx, "p1", 3, FlagBuild, false); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFlag(ctx, "p2", 1, FlagTyping, true); err != nil {
		t.Fatal(err)
	}

	recent, err := s.Recent(ctx, "p1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d events for p1, want 2", len(recent))
	}
	// Newest first.
	if recent[0].Value || !recent[1].Value {
		t.Errorf("events out of order: %+v", recent)
	}
	if recent[0].Ordinal != 3 || recent[0].Flag != FlagBuild {
		t.Errorf("unexpected event payload: %+v", recent[0])
	}
}

func TestActivityLogSkipsRejectedWrites(t *testing.T) {
	events := &memEventRepo{}
	s := NewService(newMemLedgerRepo(), events)
	ctx := context.Background()

	if err := s.SetFlag(ctx, "p1", 3, "nope", true); err == nil {
		t.Fatal("expected unknown flag error")
	}
	if err := s.SetFlag(ctx, "p1", 99, FlagBuild, true); err == nil {
		t.Fatal("expected bad ordinal error")
	}
	// Clearing a flag that was never set saves nothing and logs nothing.
	if err := s.SetFlag(ctx, "p1", 3, FlagBuild, false); err != nil {
		t.Fatal(err)
	}
	if len(events.events) != 0 {
		t.Errorf("got %d events, want 0", len(events.events))
	}
}

func TestResetPurgesActivityLog(t *testing.T) {
	events := &memEventRepo{}
	s := NewService(newMemLedgerRepo(), events)
	ctx := context.Background()

	completeLesson(t, s, "p1", 1)
	if err := s.SetFlag(ctx, "p2", 1, FlagBuild, true); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Recent(ctx, "p1", 0); len(got) != 0 {
		t.Errorf("p1 still has %d events after reset", len(got))
	}
	if got, _ := s.Recent(ctx, "p2", 0); len(got) != 1 {
		t.Errorf("p2 lost its events: got %d, want 1", len(got))
	}
}
