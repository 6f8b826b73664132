package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the word bank's units",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%4s  %-10s  %5s  %s\n", "ID", "Label", "Words", "List")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		total := 0
		for _, u := range bank.Units() {
			list := strings.Join(u.Words, " ")
			if len(list) > 55 {
				list = list[:52] + "..."
			}
			fmt.Fprintf(out, "%4d  %-10s  %5d  %s\n", u.ID, u.DisplayLabel(), len(u.Words), list)
			total += len(u.Words)
		}

		fmt.Fprintf(out, "\n%d units, %d words\n", bank.Len(), total)
		return nil
	},
}
