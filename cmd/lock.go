package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Control kid mode",
	Long: `Control kid mode. While locked, management commands (profile edits,
reset, import) are blocked until the parent secret unlocks them.`,
}

var lockSetCmd = &cobra.Command{
	Use:   "set <secret>",
	Short: "Set the parent secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			if err := env.gate.SetSecret(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(`Parent secret saved. Turn kid mode on with "tekkie lock on".`)
			return nil
		})
	},
}

var lockOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Turn kid mode on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := env.gate.Lock(ctx); err != nil {
				return err
			}
			fmt.Println("Kid mode is on.")
			return nil
		})
	},
}

var lockOffCmd = &cobra.Command{
	Use:   "off <secret>",
	Short: "Turn kid mode off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := env.gate.Unlock(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Kid mode is off.")
			return nil
		})
	},
}

var lockStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current lock state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			restricted, err := env.gate.Restricted(ctx)
			if err != nil {
				return err
			}
			hasSecret, err := env.gate.HasSecret(ctx)
			if err != nil {
				return err
			}
			switch {
			case restricted:
				fmt.Println("Kid mode is on.")
			case hasSecret:
				fmt.Println("Kid mode is off. A parent secret is set.")
			default:
				fmt.Println(`Kid mode is off. No parent secret yet; set one with "tekkie lock set".`)
			}
			return nil
		})
	},
}

func init() {
	lockCmd.AddCommand(lockSetCmd)
	lockCmd.AddCommand(lockOnCmd)
	lockCmd.AddCommand(lockOffCmd)
	lockCmd.AddCommand(lockStatusCmd)
}
