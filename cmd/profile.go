package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage child profiles",
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			grade, _ := cmd.Flags().GetInt("grade")
			start, _ := cmd.Flags().GetString("start-date")

			p, err := env.profiles.Create(ctx, args[0], grade, start)
			if err != nil {
				return err
			}
			fmt.Printf("Created profile %s (%s, %s)\n",
				p.DisplayName, curriculum.VariantDisplayName(p.Variant), p.ID)
			if start != "" && p.StartDate == nil {
				fmt.Printf("Start date %q was not understood (expected %s); profile has no schedule.\n",
					start, profile.DateLayout)
			}
			return nil
		})
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			all, err := env.profiles.List(ctx)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println(`No profiles yet. Create one with "tekkie profile add <name>".`)
				return nil
			}
			active, err := env.profiles.Active(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "\tNAME\tVARIANT\tSTART\tID")
			for _, p := range all {
				marker := ""
				if active != nil && active.ID == p.ID {
					marker = "*"
				}
				start := "-"
				if p.StartDate != nil {
					start = p.StartDate.Format(profile.DateLayout)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					marker, p.DisplayName, curriculum.VariantDisplayName(p.Variant), start, p.ID)
			}
			return w.Flush()
		})
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name|id>",
	Short: "Make a profile the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			p, err := env.profiles.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile matches %q", args[0])
			}
			if err := env.profiles.SetActive(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Active profile is now %s\n", p.DisplayName)
			return nil
		})
	},
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <name|id> <new-name>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			p, err := env.profiles.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile matches %q", args[0])
			}
			if err := env.profiles.Rename(ctx, p.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %s to %s\n", p.DisplayName, args[1])
			return nil
		})
	},
}

var profileStartDateCmd = &cobra.Command{
	Use:   "start-date <name|id> <YYYY-MM-DD|clear>",
	Short: "Set or clear a profile's schedule start date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			p, err := env.profiles.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile matches %q", args[0])
			}
			date := args[1]
			if date == "clear" {
				date = ""
			}
			if err := env.profiles.SetStartDate(ctx, p.ID, date); err != nil {
				return err
			}
			if date == "" {
				fmt.Printf("%s has no schedule now.\n", p.DisplayName)
			} else {
				fmt.Printf("%s starts on %s.\n", p.DisplayName, date)
			}
			return nil
		})
	},
}

var profileGradeCmd = &cobra.Command{
	Use:   "grade <name|id> <grade>",
	Short: "Update a profile's school grade (re-derives the curriculum variant)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			p, err := env.profiles.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile matches %q", args[0])
			}
			var grade int
			if _, err := fmt.Sscanf(args[1], "%d", &grade); err != nil || grade < 1 {
				return fmt.Errorf("grade must be a positive number, got %q", args[1])
			}
			if err := env.profiles.SetGrade(ctx, p.ID, grade); err != nil {
				return err
			}
			fmt.Printf("%s is now grade %d (%s curriculum).\n",
				p.DisplayName, grade, curriculum.VariantDisplayName(profile.VariantForGrade(grade)))
			return nil
		})
	},
}

var profileRmCmd = &cobra.Command{
	Use:   "rm <name|id>",
	Short: "Delete a profile and all its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			if err := requireUnrestricted(ctx, env); err != nil {
				return err
			}
			p, err := env.profiles.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile matches %q", args[0])
			}
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("deleting %s erases all progress; re-run with --force to confirm", p.DisplayName)
			}
			if err := env.profiles.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s.\n", p.DisplayName)
			return nil
		})
	},
}

func init() {
	profileAddCmd.Flags().Int("grade", 0, "School grade (3 and below gets the junior curriculum)")
	profileAddCmd.Flags().String("start-date", "", "Schedule start date (YYYY-MM-DD)")
	profileRmCmd.Flags().Bool("force", false, "Skip the confirmation")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profileStartDateCmd)
	profileCmd.AddCommand(profileGradeCmd)
	profileCmd.AddCommand(profileRmCmd)
}
