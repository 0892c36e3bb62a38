package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/session"
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Print one problem for a genre and tier",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, t, err := genreTierFlags(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Engine.GetProblem(g, t, a.Extension())
		if err != nil {
			return err
		}
		a.Metrics.ProblemServed(p)

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), p)
		}
		printProblem(cmd.OutOrStdout(), p, true)
		return nil
	},
}

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Print a challenge set ordered from Easy to Expert",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		genreVal, _ := cmd.Flags().GetString("genre")
		asJSON, _ := cmd.Flags().GetBool("json")

		g, err := problem.ParseGenre(genreVal)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		set, err := a.Engine.BuildChallengeSet(count, g, a.Extension())
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), set)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s challenge: %d problems\n", g.DisplayName(), len(set))
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for i, p := range set {
			fmt.Fprintf(out, "%2d. [%-6s] %s\n", i+1, p.Tier.Label(), p.Text)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an answer against a problem read as JSON from stdin",
	Long: `Check an answer against a problem.

The problem is read as JSON from stdin, e.g.

  mathstudio problem --genre equation --tier easy --json > p.json
  mathstudio check --answer "x=7" < p.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answer, _ := cmd.Flags().GetString("answer")

		var p problem.Problem
		if err := json.NewDecoder(cmd.InOrStdin()).Decode(&p); err != nil {
			return fmt.Errorf("read problem: %w", err)
		}
		if problem.Normalize(p.Answer) == "" {
			return fmt.Errorf("problem has no answer")
		}

		out := cmd.OutOrStdout()
		if problem.IsCorrect(p, answer) {
			fmt.Fprintf(out, "✓ correct (+%d)\n", max(p.Points(), session.MinPoints))
			return nil
		}
		fmt.Fprintf(out, "✗ incorrect, answer: %s\n", p.Answer)
		return nil
	},
}

func init() {
	problemCmd.Flags().String("genre", string(problem.GenreDirectProportion), "Genre id (proportional, inverse, equation, linear, simultaneous, geometry, transform, sector)")
	problemCmd.Flags().String("tier", "normal", "Difficulty tier (easy, normal, hard, expert)")
	problemCmd.Flags().Bool("json", false, "Print the problem as JSON")

	challengeCmd.Flags().Int("count", 10, "Number of problems (1-50)")
	challengeCmd.Flags().String("genre", "", "Genre id (required)")
	challengeCmd.Flags().Bool("json", false, "Print the set as JSON")
	_ = challengeCmd.MarkFlagRequired("genre")

	checkCmd.Flags().String("answer", "", "The learner's answer")
	_ = checkCmd.MarkFlagRequired("answer")
}

// genreTierFlags parses the --genre and --tier flags.
func genreTierFlags(cmd *cobra.Command) (problem.Genre, problem.Tier, error) {
	genreVal, _ := cmd.Flags().GetString("genre")
	tierVal, _ := cmd.Flags().GetString("tier")
	g, err := problem.ParseGenre(genreVal)
	if err != nil {
		return "", 0, err
	}
	t, err := problem.ParseTier(tierVal)
	if err != nil {
		return "", 0, err
	}
	return g, t, nil
}

func printProblem(w io.Writer, p problem.Problem, withAnswer bool) {
	fmt.Fprintf(w, "── %s · %s · %d pts ──\n", p.Unit, p.Tier.Label(), p.Points())
	fmt.Fprintln(w, p.Text)
	if len(p.Chips) > 0 {
		fmt.Fprintf(w, "keys: %s\n", strings.Join(p.Chips, " "))
	}
	if !withAnswer {
		return
	}
	fmt.Fprintf(w, "\nanswer: %s\n", p.Answer)
	for i, h := range p.Hints {
		fmt.Fprintf(w, "hint %d: %s\n", i+1, h)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
