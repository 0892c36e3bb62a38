package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathstudio/internal/catalog"
	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/problemgen"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the built-in problem banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogue problems (optionally filtered by genre or tier)",
	RunE: func(cmd *cobra.Command, args []string) error {
		genreVal, _ := cmd.Flags().GetString("genre")
		tierVal, _ := cmd.Flags().GetString("tier")

		problems := catalog.All()
		if genreVal != "" {
			g, err := problem.ParseGenre(genreVal)
			if err != nil {
				return err
			}
			if !catalog.Has(g) {
				return fmt.Errorf("genre %q is generated, not served from a bank", g)
			}
			problems = filterProblems(problems, func(p problem.Problem) bool { return p.Genre == g })
		}
		if tierVal != "" {
			t, err := problem.ParseTier(tierVal)
			if err != nil {
				return err
			}
			problems = filterProblems(problems, func(p problem.Problem) bool { return p.Tier == t })
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s  %-12s  %-6s  %s\n", "ID", "Genre", "Tier", "Text")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, p := range problems {
			fmt.Fprintf(out, "%-24s  %-12s  %-6s  %s\n", p.ID, p.Genre, p.Tier.Label(), truncate(oneLine(p.Text), 60))
		}
		fmt.Fprintf(out, "\n%d problems\n", len(problems))
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one catalogue problem with its answer and hints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := catalog.ByID(args[0])
		if !ok {
			return fmt.Errorf("no catalogue problem %q", args[0])
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), p)
		}
		printProblem(cmd.OutOrStdout(), p, true)
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the validator chain over the banks and sampled generator output",
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, _ := cmd.Flags().GetInt("samples")
		out := cmd.OutOrStdout()

		if err := catalog.Validate(); err != nil {
			return err
		}
		validators := problemgen.DefaultValidators()
		var failures []string
		for _, p := range catalog.All() {
			if verr := problemgen.RunValidators(&p, validators); verr != nil {
				failures = append(failures, fmt.Sprintf("%s: %v", p.ID, verr))
			}
		}
		fmt.Fprintf(out, "catalog: %d problems checked\n", len(catalog.All()))

		r := problemgen.NewRand(cfg.Seed)
		checked := 0
		for _, g := range problemgen.Genres() {
			gen, _ := problemgen.For(g)
			for _, t := range problem.AllTiers() {
				for range samples {
					p := gen(r, t)
					checked++
					if verr := problemgen.RunValidators(&p, validators); verr != nil {
						failures = append(failures, fmt.Sprintf("%s/%s %q: %v", g, t, p.Text, verr))
					}
				}
			}
		}
		fmt.Fprintf(out, "generators: %d problems checked\n", checked)

		if len(failures) > 0 {
			for _, f := range failures {
				fmt.Fprintln(out, "  ✗", f)
			}
			return fmt.Errorf("%d problems failed validation", len(failures))
		}
		fmt.Fprintln(out, "all problems valid")
		return nil
	},
}

func init() {
	bankListCmd.Flags().String("genre", "", "Filter by genre id")
	bankListCmd.Flags().String("tier", "", "Filter by tier")

	bankShowCmd.Flags().Bool("json", false, "Print the problem as JSON")

	bankValidateCmd.Flags().Int("samples", 50, "Problems to generate per genre and tier")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankShowCmd)
	bankCmd.AddCommand(bankValidateCmd)
}

func filterProblems(ps []problem.Problem, keep func(problem.Problem) bool) []problem.Problem {
	var out []problem.Problem
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
