package cmd

import (
	"fmt"

	"github.com/abhisek/wordflash/internal/config"
	"github.com/abhisek/wordflash/internal/store"
	"github.com/abhisek/wordflash/internal/wordbank"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordflash",
	Short: "Sight-word flashcards for early readers",
	Long: `Wordflash shows a unit's words one at a time in random order. Press Space
when you can read the word, or H to hear it. Finish with two thirds of the
words read unaided to pass the unit, then review the ones you missed.

Example sentences for missed words are generated when an LLM API key is set
(ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDFLASH_DB env var)")
	rootCmd.PersistentFlags().String("words", "", "Path to a YAML or JSON word bank (overrides WORDFLASH_WORDS env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the log file (overrides WORDFLASH_LOG_FILE env var)")

	rootCmd.Flags().Int("unit", 0, "Start this unit immediately")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env and WORDFLASH_* variables, then applies flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("words"); p != "" {
		cfg.WordsFile = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db / WORDFLASH_DB when
// set, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// loadBank returns the configured word bank, or the built-in one.
func loadBank(cfg config.Config) (*wordbank.Bank, error) {
	bank, err := wordbank.LoadOrDefault(cfg.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("load word bank: %w", err)
	}
	return bank, nil
}
