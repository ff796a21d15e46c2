package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/curriculum"
	"github.com/youngtekkie/tekkie/internal/ledger"
	"github.com/youngtekkie/tekkie/internal/progress"
	"github.com/youngtekkie/tekkie/internal/schedule"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's lesson",
	Long: `Show today's lesson for the active profile. With a start date the
lesson comes from the calendar; otherwise it is the next incomplete one.`,
	Args: cobra.NoArgs,
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

			var lesson curriculum.Lesson
			switch {
			case p.StartDate != nil:
				ordinal, ok := schedule.LessonForDate(*p.StartDate, time.Now())
				if !ok {
					if time.Now().Weekday() == schedule.RestDay {
						fmt.Printf("It's rest day. See you tomorrow, %s!\n", p.DisplayName)
					} else {
						fmt.Println("No lesson scheduled today.")
					}
					return nil
				}
				lesson, _ = env.tab.Lesson(ordinal)
			default:
				var ok bool
				lesson, ok = progress.NextIncomplete(env.tab, v)
				if !ok {
					fmt.Printf("All %d lessons are done. Amazing work, %s!\n", env.tab.Len(), p.DisplayName)
					return nil
				}
			}

			printLesson(env, p.DisplayName, lesson, p.Variant, v)
			return nil
		})
	},
}

func printLesson(env *appEnv, name string, lesson curriculum.Lesson, variant curriculum.Variant, v ledger.View) {
	platform := curriculum.Platforms[lesson.Platform]
	fmt.Printf("Lesson %d — Week %d, %s (%s)\n", lesson.Ordinal, lesson.Week, lesson.Day, platform.Name)
	fmt.Printf("Topic: %s\n", lesson.Topic)

	tasks, ok := env.tab.Tasks(variant, lesson.Ordinal)
	if ok {
		fmt.Printf("  [%s] build:     %s\n", mark(v.Flag(lesson.Ordinal, ledger.FlagBuild)), tasks.Build)
		fmt.Printf("  [%s] reasoning: %s\n", mark(v.Flag(lesson.Ordinal, ledger.FlagReasoning)), tasks.Reasoning)
		fmt.Printf("  [%s] typing:    %s\n", mark(v.Flag(lesson.Ordinal, ledger.FlagTyping)), tasks.Typing)
		if tasks.Note != "" {
			fmt.Printf("  [%s] presented: %s\n", mark(v.Flag(lesson.Ordinal, ledger.FlagPresented)), tasks.Note)
		} else {
			fmt.Printf("  [%s] presented\n", mark(v.Flag(lesson.Ordinal, ledger.FlagPresented)))
		}
	}
	if v.Complete(lesson.Ordinal) {
		fmt.Printf("Done! Nice work, %s.\n", name)
	}
}

func mark(done bool) string {
	if done {
		return "x"
	}
	return " "
}
