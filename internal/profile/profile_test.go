package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/youngtekkie/tekkie/internal/curriculum"
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
			return nil
		}
	}
	return nil
}

type memLedgers struct {
	docs map[string]store.LedgerFlags
}

func newMemLedgers() *memLedgers {
	return &memLedgers{docs: map[string]store.LedgerFlags{}}
}

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

type memSettings struct {
	kv map[string]string
}

func newMemSettings() *memSettings { return &memSettings{kv: map[string]string{}} }

func (m *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.kv[key]
	return v, ok, nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	m.kv[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	delete(m.kv, key)
	return nil
}

func newTestService() (*Service, *memProfiles, *memLedgers, *memSettings) {
	profiles := &memProfiles{}
	ledgers := newMemLedgers()
	settings := newMemSettings()
	return NewService(profiles, ledgers, settings, nil), profiles, ledgers, settings
}

func TestVariantForGrade(t *testing.T) {
	tests := []struct {
		grade int
		want  curriculum.Variant
	}{
		{1, curriculum.VariantJunior},
		{3, curriculum.VariantJunior},
		{4, curriculum.VariantStandard},
		{8, curriculum.VariantStandard},
		{0, curriculum.VariantStandard},
	}
	for _, tt := range tests {
		if got := VariantForGrade(tt.grade); got != tt.want {
			t.Errorf("VariantForGrade(%d) = %s, want %s", tt.grade, got, tt.want)
		}
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, _, _, settings := newTestService()

	p, err := svc.Create(ctx, "Maya", 2, "2026-03-02")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" {
		t.Error("profile got no ID")
	}
	if p.Variant != curriculum.VariantJunior {
		t.Errorf("Variant = %s, want junior for grade 2", p.Variant)
	}
	if p.StartDate == nil || p.StartDate.Format(DateLayout) != "2026-03-02" {
		t.Errorf("StartDate = %v, want 2026-03-02", p.StartDate)
	}

	// First profile becomes active automatically.
	if settings.kv[store.SettingActiveProfile] != p.ID {
		t.Error("first profile should become active")
	}

	// Second profile does not steal the pointer.
	q, err := svc.Create(ctx, "Ravi", 5, "")
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if settings.kv[store.SettingActiveProfile] != p.ID {
		t.Error("second profile must not replace the active pointer")
	}
	if q.Variant != curriculum.VariantStandard {
		t.Errorf("Variant = %s, want standard for grade 5", q.Variant)
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc, _, _, _ := newTestService()
	if _, err := svc.Create(context.Background(), "  ", 4, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestUnparsableStartDateIsScheduleLess(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	p, err := svc.Create(ctx, "Maya", 4, "next monday")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.StartDate != nil {
		t.Errorf("StartDate = %v, want nil for an unparsable date", p.StartDate)
	}
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	p, _ := svc.Create(ctx, "Maya", 4, "")
	if err := svc.Rename(ctx, p.ID, "Maya R"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, _ := svc.Get(ctx, p.ID)
	if got.DisplayName != "Maya R" {
		t.Errorf("DisplayName = %q, want %q", got.DisplayName, "Maya R")
	}

	if err := svc.Rename(ctx, "nope", "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename unknown: err = %v, want ErrNotFound", err)
	}
}

func TestSetGradeRederivesVariant(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	p, _ := svc.Create(ctx, "Maya", 2, "")
	if err := svc.SetGrade(ctx, p.ID, 5); err != nil {
		t.Fatalf("SetGrade: %v", err)
	}
	got, _ := svc.Get(ctx, p.ID)
	if got.Variant != curriculum.VariantStandard {
		t.Errorf("Variant = %s, want standard after grade change", got.Variant)
	}
}

func TestSetStartDate(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	p, _ := svc.Create(ctx, "Maya", 4, "")
	if err := svc.SetStartDate(ctx, p.ID, "2026-04-06"); err != nil {
		t.Fatalf("SetStartDate: %v", err)
	}
	got, _ := svc.Get(ctx, p.ID)
	if got.StartDate == nil {
		t.Fatal("StartDate not set")
	}

	// Clearing makes the profile schedule-less again.
	if err := svc.SetStartDate(ctx, p.ID, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, _ = svc.Get(ctx, p.ID)
	if got.StartDate != nil {
		t.Error("StartDate should be cleared")
	}
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	svc, _, ledgers, settings := newTestService()

	p, _ := svc.Create(ctx, "Maya", 4, "")
	ledgers.docs[p.ID] = store.LedgerFlags{"1": {"build": true}}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := ledgers.docs[p.ID]; ok {
		t.Error("ledger should be deleted with the profile")
	}
	if _, ok := settings.kv[store.SettingActiveProfile]; ok {
		t.Error("active pointer should be cleared")
	}
	if got, _ := svc.Get(ctx, p.ID); got != nil {
		t.Error("profile should be gone")
	}
}

func TestActiveWithStalePointer(t *testing.T) {
	ctx := context.Background()
	svc, _, _, settings := newTestService()

	settings.kv[store.SettingActiveProfile] = "gone"
	p, err := svc.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if p != nil {
		t.Errorf("Active = %+v, want nil for a stale pointer", p)
	}
}

func TestResolveByName(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	p, _ := svc.Create(ctx, "Maya", 4, "")
	_, _ = svc.Create(ctx, "Ravi", 5, "")

	got, err := svc.Resolve(ctx, "maya")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got == nil || got.ID != p.ID {
		t.Errorf("Resolve by name = %v, want profile %s", got, p.ID)
	}

	byID, _ := svc.Resolve(ctx, p.ID)
	if byID == nil || byID.ID != p.ID {
		t.Error("Resolve by ID failed")
	}

	missing, _ := svc.Resolve(ctx, "nobody")
	if missing != nil {
		t.Errorf("Resolve unknown = %v, want nil", missing)
	}
}
