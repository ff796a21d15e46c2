package gate

import (
	"context"
	"errors"
	"testing"
)

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

func TestLockRequiresSecret(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemSettings())

	if err := svc.Lock(ctx); !errors.Is(err, ErrNoSecret) {
		t.Errorf("Lock without secret: err = %v, want ErrNoSecret", err)
	}
}

func TestLockUnlockCycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemSettings())

	if err := svc.SetSecret(ctx, "tekkie123"); err != nil {
		t.Fatalf("SetSecret: %v", err)
	}
	if err := svc.Lock(ctx); err != nil {
		t.Fatalf("Lock: %v", err)
	}

	if restricted, _ := svc.Restricted(ctx); !restricted {
		t.Error("should be restricted after Lock")
	}

	if err := svc.Unlock(ctx, "nope"); !errors.Is(err, ErrWrongSecret) {
		t.Errorf("wrong secret: err = %v, want ErrWrongSecret", err)
	}
	if restricted, _ := svc.Restricted(ctx); !restricted {
		t.Error("failed unlock must keep the lock on")
	}

	if err := svc.Unlock(ctx, "tekkie123"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if restricted, _ := svc.Restricted(ctx); restricted {
		t.Error("should be unrestricted after Unlock")
	}
}

func TestSecretIsHashed(t *testing.T) {
	ctx := context.Background()
	settings := newMemSettings()
	svc := NewService(settings)

	if err := svc.SetSecret(ctx, "tekkie123"); err != nil {
		t.Fatalf("SetSecret: %v", err)
	}
	for _, v := range settings.kv {
		if v == "tekkie123" {
			t.Fatal("secret stored in the clear")
		}
	}
}

func TestSetSecretRejectsBlank(t *testing.T) {
	svc := NewService(newMemSettings())
	if err := svc.SetSecret(context.Background(), "   "); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("err = %v, want ErrEmptySecret", err)
	}
}

func TestUnrestrictedByDefault(t *testing.T) {
	svc := NewService(newMemSettings())
	restricted, err := svc.Restricted(context.Background())
	if err != nil {
		t.Fatalf("Restricted: %v", err)
	}
	if restricted {
		t.Error("fresh install should be unrestricted")
	}
}

func TestUnlockTrimsWhitespace(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemSettings())

	_ = svc.SetSecret(ctx, "tekkie123")
	_ = svc.Lock(ctx)
	if err := svc.Unlock(ctx, "  tekkie123  "); err != nil {
		t.Errorf("Unlock with padding: %v", err)
	}
}
