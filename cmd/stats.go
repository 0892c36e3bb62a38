package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.Store.EventRepo().Stats(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, stats)
		}

		if stats.Attempts == 0 {
			fmt.Fprintln(out, "No attempts recorded yet.")
		} else {
			fmt.Fprintf(out, "%-14s  %-6s  %8s  %8s  %8s\n", "Genre", "Tier", "Attempts", "Correct", "Accuracy")
			fmt.Fprintln(out, strings.Repeat("─", 52))
			for _, gt := range stats.ByGenreTier {
				fmt.Fprintf(out, "%-14s  %-6s  %8d  %8d  %7.0f%%\n",
					gt.Genre, gt.Tier.Label(), gt.Attempts, gt.Correct, gt.Accuracy()*100)
			}
			fmt.Fprintln(out, strings.Repeat("─", 52))
			fmt.Fprintf(out, "%-14s  %-6s  %8d  %8d  %7.0f%%\n",
				"TOTAL", "", stats.Attempts, stats.Correct, stats.Accuracy()*100)
			fmt.Fprintf(out, "\nTotal score: %d\n", stats.TotalScore)
		}

		if len(stats.RecentWrong) > 0 {
			fmt.Fprintln(out, "\nRecent wrong answers")
			fmt.Fprintln(out, strings.Repeat("─", 52))
			for _, w := range stats.RecentWrong {
				fmt.Fprintf(out, "%s  %s\n    given %q, expected %q\n",
					w.Timestamp.Local().Format("01-02 15:04"), truncate(oneLine(w.Text), 50), w.Given, w.Expected)
			}
		}
		if stats.PendingProblems > 0 {
			fmt.Fprintf(out, "\n%d extension problems awaiting approval\n", stats.PendingProblems)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print statistics as JSON")
}
