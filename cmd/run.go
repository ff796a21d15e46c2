package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/app"
)

// runApp opens the store, resolves the profile, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
		p, err := resolveProfile(ctx, cmd, env)
		if err != nil {
			if errors.Is(err, errNoProfile) {
				// Fall back to the first profile before giving up.
				all, listErr := env.profiles.List(ctx)
				if listErr == nil && len(all) > 0 {
					p = all[0]
					_ = env.profiles.SetActive(ctx, p.ID)
				} else {
					return fmt.Errorf(`no profiles yet; create one with "tekkie profile add <name>"`)
				}
			} else {
				return err
			}
		}

		restricted, err := env.gate.Restricted(ctx)
		if err != nil {
			return err
		}

		return app.Run(app.Options{
			Tab:        env.tab,
			Ledger:     env.ledger,
			Profiles:   env.profiles,
			Profile:    p,
			Restricted: restricted,
		})
	})
}
