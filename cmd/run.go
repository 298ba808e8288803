package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/app"
	"github.com/abhisek/mathquest/internal/applog"
	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/questgen"
	"github.com/abhisek/mathquest/internal/store"
)

// runApp opens the store, builds the question registry, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		cfg.DBPath = p
	}

	log := applog.New(cfg.LogPath)
	defer log.Sync()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	registry := questgen.NewRegistry(log)
	return app.Run(st, registry, cfg.TransitionDelay())
}
