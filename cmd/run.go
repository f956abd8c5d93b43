package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/edgequiz/internal/app"
	"github.com/abhisek/edgequiz/internal/config"
	"github.com/abhisek/edgequiz/internal/llm"
	"github.com/abhisek/edgequiz/internal/logging"
	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/store"
	"github.com/abhisek/edgequiz/internal/trivia"
)

// gameEnv bundles what every game command needs. store and source may be
// nil: the audit log is best effort and a missing provider surfaces as a
// failed fetch.
type gameEnv struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store
	source trivia.Source

	closers []io.Closer
}

func (e *gameEnv) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
}

// openGameEnv loads config, opens the log and the audit store, and builds
// the question source.
func openGameEnv(cmd *cobra.Command) (*gameEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	env := &gameEnv{cfg: cfg}

	logPath, err := resolveLogPath(cfg)
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.Open(logPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	env.logger = logger
	env.closers = append(env.closers, closer)

	var recorder llm.EventRecorder
	if st, err := openStore(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM audit log disabled: %v\n", err)
		logger.Warn("audit store unavailable", "err", err)
	} else {
		env.store = st
		env.closers = append(env.closers, st)
		recorder = st.EventRepo()
	}

	provider, err := llm.NewProvider(commandContext(cmd), cfg.LLM.Config, recorder, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Questions cannot be fetched until a provider is set up.")
		logger.Warn("no LLM provider", "err", err)
		return env, nil
	}
	logger.Info("LLM provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID())
	env.source = trivia.New(provider, triviaConfig(cfg))
	return env, nil
}

func triviaConfig(cfg config.Config) trivia.Config {
	tc := trivia.DefaultConfig()
	if cfg.LLM.MaxTokens > 0 {
		tc.MaxTokens = cfg.LLM.MaxTokens
	}
	tc.Temperature = cfg.LLM.Temperature
	return tc
}

func resolveLogPath(cfg config.Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "edgequiz.log"), nil
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// launch selects how the TUI opens.
type launch struct {
	autoStart  bool
	difficulty quiz.Difficulty
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, l launch) error {
	env, err := openGameEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	return app.Run(app.Options{
		Source:     env.source,
		Logger:     env.logger,
		Questions:  env.cfg.Quiz.Questions,
		Timeout:    env.cfg.LLM.Timeout,
		AutoStart:  l.autoStart,
		Difficulty: l.difficulty,
	})
}
