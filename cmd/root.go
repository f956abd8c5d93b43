package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/edgequiz/internal/config"
	"github.com/abhisek/edgequiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edgequiz",
	Short: "AI cricket trivia in your terminal",
	Long: `EDGE QUIZ: a cricket trivia innings against the clock.

Questions are generated by an LLM (Gemini by default). Each ball gives you
20 seconds; quick correct answers score more runs.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, launch{})
	},
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to the LLM audit database (overrides EDGEQUIZ_DB)")
	pf.String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/edgequiz/config.yaml)")
	pf.Int("questions", 0, fmt.Sprintf("Questions per innings, 1-%d (default from config)", config.MaxQuestions))
	pf.String("log-level", "", "Write a log file at this level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads the layered configuration and applies command flags
// on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("questions") {
		cfg.Quiz.Questions, _ = cmd.Flags().GetInt("questions")
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DBPath = db
	}

	if err := cfg.ValidateQuiz(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveDBPath returns the database path: --db or EDGEQUIZ_DB (both land
// in cfg.DBPath), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
