package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/abhisek/wordflash/internal/config"
	"github.com/abhisek/wordflash/internal/hints"
	"github.com/abhisek/wordflash/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and try the example-sentence LLM",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM token usage and estimated cost by model",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		usage, err := s.EventRepo().LLMUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(usage) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-32s  %6s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Failed", "Input", "Output", "Cost")
		fmt.Fprintln(out, strings.Repeat("─", 82))

		var totalCost float64
		var unknownModels []string
		for _, mu := range usage {
			costStr := "?"
			if c, ok := llm.UsageCost(mu); ok {
				totalCost += c
				costStr = formatCost(c)
			} else {
				unknownModels = append(unknownModels, mu.Model)
			}
			fmt.Fprintf(out, "%-32s  %6d  %6d  %10d  %10d  %10s\n",
				truncate(mu.Provider+"/"+mu.Model, 32), mu.Requests, mu.Failures,
				mu.InputTokens, mu.OutputTokens, costStr)
		}

		fmt.Fprintln(out, strings.Repeat("─", 82))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(out, "%-32s  %6s  %6s  %10s  %10s  %10s\n",
			label, "", "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

var llmSentenceCmd = &cobra.Command{
	Use:   "sentence <word>",
	Short: "Generate an example sentence for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		logger := config.NewLogger(os.Stderr, slog.LevelWarn)
		provider, llmCfg, err := llm.NewProviderFromEnv(ctx, s.EventRepo(), logger)
		if errors.Is(err, llm.ErrNotConfigured) {
			return fmt.Errorf("%w: set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY", err)
		}
		if err != nil {
			return fmt.Errorf("llm provider: %w", err)
		}

		svc := hints.NewService(provider, hints.WithTimeout(llmCfg.Timeout), hints.WithLogger(logger))
		sentence, err := svc.Sentence(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", sentence, provider.ModelID())
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmSentenceCmd)
}
