package store

import (
	"context"
	"fmt"

	"github.com/youngtekkie/tekkie/ent"
	entsetting "github.com/youngtekkie/tekkie/ent/setting"
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	rec, err := r.client.Setting.Query().
		Where(entsetting.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query setting %q: %w", key, err)
	}
	return rec.Value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	existing, err := r.client.Setting.Query().
		Where(entsetting.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query setting %q: %w", key, err)
		}
		_, err = r.client.Setting.Create().
			SetKey(key).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create setting %q: %w", key, err)
		}
		return nil
	}

	_, err = r.client.Setting.UpdateOne(existing).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %q: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Setting.Delete().
		Where(entsetting.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}
