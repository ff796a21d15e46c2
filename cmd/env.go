package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/backup"
	"github.com/youngtekkie/tekkie/internal/config"
	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/gate"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/profile"
	"github.com/youngtekkie/tekkie/internal/store"
)

var errNoProfile = errors.New(`no profile selected; create one with "tekkie profile add" or pass --profile`)

// appEnv bundles the opened store and the services every subcommand
// needs.
type appEnv struct {
	store    *store.Store
	tab      *curriculum.Table
	profiles *profile.Service
	ledger   *ledger.Service
	gate     *gate.Service
	backup   *backup.Service
}

// withEnv opens the store, builds the service graph, runs fn, and
// closes the store afterwards.
func withEnv(cmd *cobra.Command, fn func(ctx context.Context, env *appEnv) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	env := &appEnv{
		store:    st,
		tab:      curriculum.Default(),
		profiles: profile.NewService(st.ProfileRepo(), st.LedgerRepo(), st.SettingsRepo(), st.TickEventRepo()),
		ledger:   ledger.NewService(st.LedgerRepo(), st.TickEventRepo()),
		gate:     gate.NewService(st.SettingsRepo()),
		backup:   backup.NewService(st.ProfileRepo(), st.LedgerRepo()),
	}
	return fn(cmd.Context(), env)
}

// resolveProfile picks the profile a command operates on: the --profile
// flag first, then the stored active pointer, then the config file's
// default_profile.
func resolveProfile(ctx context.Context, cmd *cobra.Command, env *appEnv) (*profile.Profile, error) {
	if ref, _ := cmd.Flags().GetString("profile"); ref != "" {
		p, err := env.profiles.Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("no profile matches %q", ref)
		}
		return p, nil
	}

	p, err := env.profiles.Active(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if cfg, err := config.Load(); err == nil && cfg.DefaultProfile != "" {
		if p, err := env.profiles.Resolve(ctx, cfg.DefaultProfile); err == nil && p != nil {
			return p, nil
		}
	}
	return nil, errNoProfile
}

// requireUnrestricted blocks management commands while kid mode is on.
func requireUnrestricted(ctx context.Context, env *appEnv) error {
	restricted, err := env.gate.Restricted(ctx)
	if err != nil {
		return err
	}
	if restricted {
		return errors.New(`kid mode is on; run "tekkie lock off" first`)
	}
	return nil
}
