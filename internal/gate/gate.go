// Package gate implements the parent lock: a local shared secret that
// hides management commands while kid mode is on.
package gate

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/youngtekkie/tekkie/internal/store"
)

var (
	// ErrEmptySecret rejects blank secrets.
	ErrEmptySecret = errors.New("secret must not be empty")
	// ErrWrongSecret marks a failed unlock attempt.
	ErrWrongSecret = errors.New("wrong secret")
	// ErrNoSecret marks lock operations before a secret exists.
	ErrNoSecret = errors.New("no parent secret set")
)

// Service manages the restricted flag and the secret hash.
type Service struct {
	settings store.SettingsRepo
}

// NewService returns a gate over the given settings store.
func NewService(settings store.SettingsRepo) *Service {
	return &Service{settings: settings}
}

// SetSecret stores the hash of a new parent secret. Setting a secret
// does not change the current lock state.
func (s *Service) SetSecret(ctx context.Context, secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ErrEmptySecret
	}
	return s.settings.Set(ctx, store.SettingGateSecret, hash(secret))
}

// HasSecret reports whether a parent secret has ever been set.
func (s *Service) HasSecret(ctx context.Context) (bool, error) {
	_, ok, err := s.settings.Get(ctx, store.SettingGateSecret)
	return ok, err
}

// Lock turns kid mode on. A secret must exist first or there would be
// no way back.
func (s *Service) Lock(ctx context.Context) error {
	ok, err := s.HasSecret(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSecret
	}
	return s.settings.Set(ctx, store.SettingRestricted, "1")
}

// Unlock turns kid mode off when the secret matches.
func (s *Service) Unlock(ctx context.Context, secret string) error {
	stored, ok, err := s.settings.Get(ctx, store.SettingGateSecret)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSecret
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(hash(strings.TrimSpace(secret)))) != 1 {
		return ErrWrongSecret
	}
	return s.settings.Delete(ctx, store.SettingRestricted)
}

// Restricted reports whether kid mode is on. Missing state reads as
// unrestricted.
func (s *Service) Restricted(ctx context.Context) (bool, error) {
	v, ok, err := s.settings.Get(ctx, store.SettingRestricted)
	if err != nil {
		return false, err
	}
	return ok && v == "1", nil
}

func hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
