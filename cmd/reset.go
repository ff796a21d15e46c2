package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase a profile's progress ledger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			p, err := resolveProfile(ctx, cmd, env)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("this erases all of %s's ticked lessons; re-run with --force to confirm", p.DisplayName)
			}
			if err := env.ledger.Reset(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Progress for %s has been reset.\n", p.DisplayName)
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation")
}
