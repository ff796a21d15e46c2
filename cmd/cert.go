package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/certificate"
	"github.com/youngtekkie/tekkie/internal/curriculum"
)

var certCmd = &cobra.Command{
	Use:   "cert [week]",
	Short: "Print a weekly certificate",
	Long: `Print a weekly certificate for the active profile. With no week, all
weeks that earned a completion certificate are listed.`,
	Args: cobra.MaximumNArgs(1),
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

			if len(args) == 0 {
				earned := 0
				for week := 1; week <= curriculum.WeeksTotal; week++ {
					c := certificate.For(env.tab, v, p.Variant, week, p.StartDate)
					if c.Kind == certificate.KindCompletion {
						fmt.Printf("Week %2d: %s\n", week, c.Title)
						earned++
					}
				}
				if earned == 0 {
					fmt.Println("No completion certificates yet. Finish a full week to earn one!")
				}
				return nil
			}

			week, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("week must be a number, got %q", args[0])
			}
			printCertificate(p.DisplayName, certificate.For(env.tab, v, p.Variant, week, p.StartDate))
			return nil
		})
	},
}

func printCertificate(name string, c certificate.Certificate) {
	rule := strings.Repeat("=", 46)
	fmt.Println(rule)
	if c.Kind == certificate.KindCompletion {
		fmt.Printf("  CERTIFICATE OF COMPLETION\n")
	} else {
		fmt.Printf("  PROGRESS AWARD (%d%%)\n", c.Percent)
	}
	fmt.Printf("  %s\n", c.Title)
	fmt.Printf("  Awarded to %s for Week %d\n", name, c.Week)
	if c.DateLabel != "" {
		fmt.Printf("  %s\n", c.DateLabel)
	}
	fmt.Println(rule)
	for _, item := range c.Checklist {
		fmt.Printf("  [%s] Lesson %2d (%s) %s\n", mark(item.Complete), item.Ordinal, item.Day, item.Topic)
	}
}
