package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/youngtekkie/tekkie/internal/config"
	"github.com/youngtekkie/tekkie/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tekkie",
	Short: "Coding curriculum tracker for kids",
	Long:  "Tekkie — terminal companion for the Young Tekkie coding curriculum: track lessons, streaks, and certificates for each child.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg, err := config.Load(); err == nil {
			lvl, lvlErr := cfg.ParseLogLevel()
			log.SetLevel(lvl)
			if lvlErr != nil {
				log.Warn("config", "err", lvlErr)
			}
		}
		// --verbose wins over the config file.
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TEKKIE_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Profile name or ID (overrides the active profile)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(tickCmd)
	rootCmd.AddCommand(untickCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the TEKKIE_DB env var, then the config file, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("TEKKIE_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
