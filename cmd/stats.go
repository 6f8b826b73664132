package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-unit results from the run journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.RunRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No runs recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-10s  %5s  %6s  %7s  %7s  %s\n",
			"Unit", "Runs", "Passed", "Perfect", "Reviews", "Last played")
		fmt.Fprintln(out, strings.Repeat("─", 66))

		var runs, passes int
		for _, s := range stats {
			fmt.Fprintf(out, "%-10s  %5d  %6d  %7d  %7d  %s\n",
				bank.Label(s.Unit), s.Runs, s.Passes, s.Perfects, s.Reviews,
				s.LastPlayed.Local().Format("2006-01-02 15:04"))
			runs += s.Runs
			passes += s.Passes
		}

		fmt.Fprintf(out, "\n%d runs, %d passed\n", runs, passes)
		return nil
	},
}
