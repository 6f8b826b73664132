package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/wordflash/internal/app"
	"github.com/abhisek/wordflash/internal/drill"
	"github.com/abhisek/wordflash/internal/feedback"
	"github.com/abhisek/wordflash/internal/hints"
	"github.com/abhisek/wordflash/internal/llm"
	"github.com/abhisek/wordflash/internal/screens/flashcard"
	"github.com/abhisek/wordflash/internal/screens/home"
	"github.com/abhisek/wordflash/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logFile, err := cfg.OpenLogger()
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}

	unit, _ := cmd.Flags().GetInt("unit")
	if unit != 0 && !bank.Has(unit) {
		return fmt.Errorf("unit %d: %w", unit, drill.ErrInvalidUnit)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sounds := feedback.NewListener(
		feedback.NewPlayer(cfg.SoundDir, cfg.SoundPlayer),
		feedback.NewNarrator(cfg.SpeakCommand),
		logger,
	)
	defer sounds.Wait()

	drillDeps := flashcard.Deps{
		Bank:         bank,
		Listeners:    []drill.Listener{store.NewRecorder(st.RunRepo(), logger), sounds},
		AdvanceDelay: cfg.AdvanceDelay,
		Logger:       logger,
	}

	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), logger)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Info("no LLM provider configured; example sentences disabled")
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Example sentences will be unavailable.")
	default:
		logger.Info("LLM provider ready", "provider", llmCfg.Provider, "model", provider.ModelID())
		drillDeps.Hints = hints.NewService(provider,
			hints.WithTimeout(llmCfg.Timeout),
			hints.WithLogger(logger),
		)
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	logger.Info("starting", "version", buildVersion(), "units", bank.Len(), "unit", unit)

	return app.Run(app.Options{
		Home: home.Deps{
			Bank:         bank,
			Runs:         st.RunRepo(),
			Drill:        drillDeps,
			HintsEnabled: drillDeps.Hints != nil,
			Logger:       logger,
		},
		StartUnit:  unit,
		SkipSplash: noSplash,
	})
}
