package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/progress"
	"github.com/youngtekkie/tekkie/internal/streak"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			p, err := resolveProfile(ctx, cmd, env)
			if err != nil {
				return err
			}
			v, err := env.ledger.View(ctx, p.ID)
			if err != nil {
				return err
			}

			overall := progress.Overall(env.tab, v)
			fmt.Printf("%s — %d/%d lessons (%d%%)\n",
				p.DisplayName, overall.Completed, overall.Total, overall.Percent)
			fmt.Printf("Streak: %d  Longest: %d\n",
				streak.Current(env.tab, v, p.StartDate, time.Now()),
				streak.Longest(env.tab, v))

			fmt.Println()
			for phase := 1; phase <= curriculum.PhasesTotal; phase++ {
				s := progress.Phase(env.tab, v, phase)
				fmt.Printf("Phase %d (%s): %d/%d (%d%%)\n",
					phase, curriculum.PhaseDisplayName(phase), s.Completed, s.Total, s.Percent)
			}

			fmt.Println()
			for week := 1; week <= curriculum.WeeksTotal; week++ {
				s := progress.Week(env.tab, v, week)
				fmt.Printf("Week %2d: %s %d/%d\n", week, bar(s), s.Completed, s.Total)
			}

			if next, ok := progress.NextIncomplete(env.tab, v); ok {
				fmt.Printf("\nNext up: lesson %d — %s\n", next.Ordinal, next.Topic)
			}
			return nil
		})
	},
}

// bar renders a small text progress bar for one summary.
func bar(s progress.Summary) string {
	const width = 12
	filled := 0
	if s.Total > 0 {
		filled = s.Completed * width / s.Total
	}
	out := make([]byte, width)
	for i := range out {
		if i < filled {
			out[i] = '#'
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
