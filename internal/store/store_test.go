package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// Missing profile reads as nil, not an error.
	got, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing profile")
	}

	now := time.Now().UTC().Truncate(time.Second)
	p := &Profile{
		ID:          "p1",
		DisplayName: "Maya",
		Variant:     "standard",
		StartDate:   "2026-01-05",
		Grade:       5,
		CreatedAt:   now,
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected profile")
	}
	if got.DisplayName != "Maya" || got.Variant != "standard" || got.StartDate != "2026-01-05" || got.Grade != 5 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	got.DisplayName = "Maya R"
	got.StartDate = ""
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.Get(ctx, "p1")
	if got.DisplayName != "Maya R" || got.StartDate != "" {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestProfileListOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"a", "b", "c"} {
		err := repo.Save(ctx, &Profile{
			ID:          id,
			DisplayName: id,
			Variant:     "standard",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list len = %d, want 3", len(list))
	}
	for i, want := range []string{"a", "b", "c"} {
		if list[i].ID != want {
			t.Errorf("list[%d].ID = %q, want %q", i, list[i].ID, want)
		}
	}
}

func TestProfileDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Profile{ID: "p1", DisplayName: "x", Variant: "junior", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatal("profile still present after delete")
	}

	// Deleting again is a no-op.
	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	// Missing ledger loads empty.
	flags, err := repo.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if len(flags) != 0 {
		t.Fatalf("missing ledger len = %d, want 0", len(flags))
	}

	flags = LedgerFlags{
		"1": {"build": true, "typing": false},
		"2": {"build": true},
	}
	if err := repo.Save(ctx, "p1", flags); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got["1"]["build"] || got["1"]["typing"] || !got["2"]["build"] {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Second save replaces the whole document.
	if err := repo.Save(ctx, "p1", LedgerFlags{"3": {"build": true}}); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, _ = repo.Load(ctx, "p1")
	if len(got) != 1 || !got["3"]["build"] {
		t.Errorf("resave did not replace document: %+v", got)
	}
}

func TestLedgerIsolatedPerProfile(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "a", LedgerFlags{"1": {"build": true}}); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := repo.Save(ctx, "b", LedgerFlags{"2": {"build": true}}); err != nil {
		t.Fatalf("save b: %v", err)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete a: %v", err)
	}

	aFlags, _ := repo.Load(ctx, "a")
	if len(aFlags) != 0 {
		t.Errorf("profile a ledger survived delete: %+v", aFlags)
	}
	bFlags, _ := repo.Load(ctx, "b")
	if !bFlags["2"]["build"] {
		t.Errorf("profile b ledger affected by a's delete: %+v", bFlags)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, SettingActiveProfile)
	if err != nil {
		t.Fatalf("get unset: %v", err)
	}
	if ok {
		t.Fatal("expected unset key")
	}

	if err := repo.Set(ctx, SettingActiveProfile, "p1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, SettingActiveProfile, "p2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := repo.Get(ctx, SettingActiveProfile)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "p2" {
		t.Errorf("get = (%q, %v), want (p2, true)", v, ok)
	}

	if err := repo.Delete(ctx, SettingActiveProfile); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, _ = repo.Get(ctx, SettingActiveProfile)
	if ok {
		t.Fatal("key still set after delete")
	}
}

func TestTickEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.TickEventRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Append(ctx, TickEvent{ProfileID: "p1", Ordinal: i, Flag: "build", Value: true})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}
	if err := repo.Append(ctx, TickEvent{ProfileID: "p2", Ordinal: 1, Flag: "typing", Value: true}); err != nil {
		t.Fatalf("append p2 event: %v", err)
	}

	recent, err := repo.Recent(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d events, want 2", len(recent))
	}
	if recent[0].Ordinal != 3 || recent[1].Ordinal != 2 {
		t.Errorf("events not newest-first: %+v", recent)
	}
	if recent[0].At.IsZero() {
		t.Error("occurred_at not defaulted")
	}

	if err := repo.DeleteFor(ctx, "p1"); err != nil {
		t.Fatalf("delete for p1: %v", err)
	}
	if got, _ := repo.Recent(ctx, "p1", 0); len(got) != 0 {
		t.Errorf("p1 events survived delete: %d", len(got))
	}
	if got, _ := repo.Recent(ctx, "p2", 0); len(got) != 1 {
		t.Errorf("p2 events affected by p1 delete: %d", len(got))
	}
}
