package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all profiles and progress as JSON",
	Long: `Export all profiles and progress as JSON. With no file the document
goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			raw, err := env.backup.ExportJSON(ctx)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Println(string(raw))
				return nil
			}
			if err := os.WriteFile(args[0], raw, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}
			fmt.Printf("Exported to %s\n", args[0])
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles and progress from a backup file",
	Long: `Import profiles and progress from a backup file. Profiles with
matching IDs are overwritten, ledgers included; other profiles are
left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			n, err := env.backup.Import(ctx, raw)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d profile(s).\n", n)
			return nil
		})
	},
}
