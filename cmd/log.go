package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/ledger"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent tick activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			p, err := resolveProfile(ctx, cmd, env)
			if err != nil {
				return err
			}
			events, err := env.ledger.Recent(ctx, p.ID, logLimit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No activity yet.")
				return nil
			}

			for _, ev := range events {
				mark := "+"
				if !ev.Value {
					mark = "-"
				}
				topic := ""
				if l, ok := env.tab.Lesson(ev.Ordinal); ok {
					topic = "  " + l.Topic
				}
				fmt.Printf("%s  %s %-22s lesson %2d%s\n",
					ev.At.Format("2006-01-02 15:04"), mark,
					ledger.FlagDisplayName(ev.Flag), ev.Ordinal, topic)
			}
			return nil
		})
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "maximum entries to show")
}
