package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/ledger"
)

var tickCmd = &cobra.Command{
	Use:   "tick <lesson> [flag...]",
	Short: "Mark lesson tasks as done",
	Long: `Mark lesson tasks as done. Flags are build, reasoning, typing and
presented; with no flags, all four are ticked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFlags(cmd, args, true)
	},
}

var untickCmd = &cobra.Command{
	Use:   "untick <lesson> [flag...]",
	Short: "Clear lesson task marks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFlags(cmd, args, false)
	},
}

func setFlags(cmd *cobra.Command, args []string, value bool) error {
	return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
		p, err := resolveProfile(ctx, cmd, env)
		if err != nil {
			return err
		}

		ordinal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("lesson must be a number, got %q", args[0])
		}
		lesson, ok := env.tab.Lesson(ordinal)
		if !ok {
			return fmt.Errorf("no lesson %d (valid range 1-%d)", ordinal, env.tab.Len())
		}

		keys := args[1:]
		if len(keys) == 0 {
			keys = ledger.AllFlags()
		}
		for _, key := range keys {
			key = strings.ToLower(key)
			if err := env.ledger.SetFlag(ctx, p.ID, ordinal, key, value); err != nil {
				return err
			}
		}

		v, err := env.ledger.View(ctx, p.ID)
		if err != nil {
			return err
		}
		state := "in progress"
		if v.Complete(ordinal) {
			state = "complete"
		}
		fmt.Printf("Lesson %d (%s) is %s for %s.\n", ordinal, lesson.Topic, state, p.DisplayName)
		return nil
	})
}
