package backup

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/youngtekkie/tekkie/internal/store"
)

type memProfiles struct {
	recs []*store.Profile
}

func (m *memProfiles) Save(_ context.Context, p *store.Profile) error {
	cp := *p
	m.recs = append(m.recs, &cp)
	return nil
}

func (m *memProfiles) Update(_ context.Context, p *store.Profile) error {
	for i, r := range m.recs {
		if r.ID == p.ID {
			cp := *p
			m.recs[i] = &cp
		}
	}
	return nil
}

func (m *memProfiles) Get(_ context.Context, id string) (*store.Profile, error) {
	for _, r := range m.recs {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProfiles) List(_ context.Context) ([]*store.Profile, error) {
	out := make([]*store.Profile, 0, len(m.recs))
	for _, r := range m.recs {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProfiles) Delete(_ context.Context, id string) error {
	for i, r := range m.recs {
		if r.ID == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			break
		}
	}
	return nil
}

type memLedgers struct {
	docs map[string]store.LedgerFlags
}

func newMemLedgers() *memLedgers { return &memLedgers{docs: map[string]store.LedgerFlags{}} }

func (m *memLedgers) Load(_ context.Context, id string) (store.LedgerFlags, error) {
	if doc, ok := m.docs[id]; ok {
		return doc, nil
	}
	return store.LedgerFlags{}, nil
}

func (m *memLedgers) Save(_ context.Context, id string, flags store.LedgerFlags) error {
	m.docs[id] = flags
	return nil
}

func (m *memLedgers) Delete(_ context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

func seeded() (*Service, *memProfiles, *memLedgers) {
	profiles := &memProfiles{recs: []*store.Profile{
		{ID: "p1", DisplayName: "Maya", Variant: "junior", StartDate: "2026-03-02", Grade: 2, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "p2", DisplayName: "Ravi", Variant: "standard", Grade: 5, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}}
	ledgers := newMemLedgers()
	ledgers.docs["p1"] = store.LedgerFlags{"1": {"build": true, "typing": true}}
	return NewService(profiles, ledgers), profiles, ledgers
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := seeded()

	raw, err := svc.ExportJSON(ctx)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	// Importing an export into an empty store reproduces it.
	empty := NewService(&memProfiles{}, newMemLedgers())
	n, err := empty.Import(ctx, raw)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d profiles, want 2", n)
	}

	again, err := empty.ExportJSON(ctx)
	if err != nil {
		t.Fatalf("ExportJSON after import: %v", err)
	}

	var a, b Document
	if err := json.Unmarshal(raw, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(again, &b); err != nil {
		t.Fatal(err)
	}
	if len(a.Profiles) != len(b.Profiles) {
		t.Fatalf("profile count drifted: %d vs %d", len(a.Profiles), len(b.Profiles))
	}
	if b.Profiles[0].Ledger["1"]["build"] != true {
		t.Error("ledger flags lost in round trip")
	}
}

func TestImportOverwritesMatchingIDs(t *testing.T) {
	ctx := context.Background()
	svc, profiles, ledgers := seeded()

	doc := Document{
		Version: FormatVersion,
		Profiles: []ProfileRecord{{
			ID:          "p1",
			DisplayName: "Maya Renamed",
			Variant:     "standard",
			CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Ledger:      store.LedgerFlags{"2": {"build": true}},
		}},
	}
	raw, _ := json.Marshal(doc)

	if _, err := svc.Import(ctx, raw); err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, _ := profiles.Get(ctx, "p1")
	if got.DisplayName != "Maya Renamed" {
		t.Errorf("DisplayName = %q, want overwrite", got.DisplayName)
	}
	if _, ok := ledgers.docs["p1"]["1"]; ok {
		t.Error("old ledger row should be replaced, not merged")
	}
	// p2 untouched.
	if got, _ := profiles.Get(ctx, "p2"); got == nil || got.DisplayName != "Ravi" {
		t.Error("unrelated profile was modified")
	}
}

func TestImportRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, profiles, _ := seeded()
	before := len(profiles.recs)

	bad := []struct {
		name string
		raw  string
	}{
		{"not json", "{half a doc"},
		{"missing version", `{"profiles": []}`},
		{"bad variant", `{"version": 1, "profiles": [{"id": "x", "display_name": "X", "variant": "advanced"}]}`},
		{"blank id", `{"version": 1, "profiles": [{"id": "", "display_name": "X", "variant": "standard"}]}`},
	}
	for _, tt := range bad {
		if _, err := svc.Import(ctx, []byte(tt.raw)); err == nil {
			t.Errorf("%s: Import accepted invalid input", tt.name)
		}
	}
	if len(profiles.recs) != before {
		t.Error("rejected imports must not write profiles")
	}
}

func TestImportRejectsFutureVersion(t *testing.T) {
	svc, _, _ := seeded()
	raw := `{"version": 99, "profiles": []}`
	_, err := svc.Import(context.Background(), []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("err = %v, want version rejection", err)
	}
}
