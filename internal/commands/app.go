package commands

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/logging"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// app carries the state shared by subcommands for one invocation.
type app struct {
	configPath string
	ledgerPath string
	verbose    bool
	plain      bool

	cfg *config.Config
	log zerolog.Logger
}

func (a *app) setup(cmd *cobra.Command) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Log.Level
	if a.verbose {
		level = zerolog.LevelDebugValue
	}
	logger, err := logging.New(logging.Config{
		Level:  level,
		Pretty: cfg.Log.Pretty,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger
	a.log.Debug().Str("config", a.configPath).Msg("configuration loaded")
	return nil
}

func (a *app) openStore() *store.Store {
	path := a.ledgerPath
	if path == "" {
		path = a.cfg.LedgerPath(a.configPath)
	}
	return store.Open(path, logging.Component(a.log, "store"))
}

// checkCategory rejects names outside the configured category list.
func (a *app) checkCategory(name string) error {
	if !a.cfg.HasCategory(name) {
		return fmt.Errorf("unknown category %q (choose from %s)", name, strings.Join(a.cfg.Categories, ", "))
	}
	return nil
}
