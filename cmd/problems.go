package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/store"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "Author and approve extension problems",
}

var problemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit an extension problem for approval",
	Long: `Submit an extension problem. It is stored unapproved.

Fields come from flags, or from a JSON file with --file (use - for stdin):

  {"genre":"sector","tier":"normal","text":"...","answer":"2π",
   "variants":["2πcm"],"hints":["..."],"created_by":"sato"}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := problemInputFromFlags(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, err := a.Store.ProblemRepo().AddProblem(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s (awaiting approval)\n", rec.ID)
		return nil
	},
}

var problemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List extension problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := problemFilterFromFlags(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		recs, err := a.Store.ProblemRepo().ListProblems(cmd.Context(), f)
		if err != nil {
			return err
		}
		if asJSON {
			if recs == nil {
				recs = []store.ProblemRecord{}
			}
			return writeJSON(cmd.OutOrStdout(), recs)
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No extension problems found.")
			return nil
		}
		fmt.Fprintf(out, "%-39s  %-12s  %-6s  %-12s  %-3s  %s\n", "ID", "Genre", "Tier", "Author", "OK", "Text")
		fmt.Fprintln(out, strings.Repeat("─", 120))
		for _, r := range recs {
			ok := " "
			if r.Approved {
				ok = "✓"
			}
			fmt.Fprintf(out, "%-39s  %-12s  %-6s  %-12s  %-3s  %s\n",
				r.ID, r.Problem.Genre, r.Problem.Tier.Label(), truncate(r.CreatedBy, 12), ok,
				truncate(oneLine(r.Problem.Text), 40))
		}
		return nil
	},
}

var problemsApproveCmd = &cobra.Command{
	Use:   "approve <id>...",
	Short: "Approve extension problems so they join the pool",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		for _, id := range args {
			if err := a.Store.ProblemRepo().ApproveProblem(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "approved %s\n", id)
		}
		return nil
	},
}

var problemsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete extension problems",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		for _, id := range args {
			if err := a.Store.ProblemRepo().DeleteProblem(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
		}
		return nil
	},
}

func init() {
	f := problemsAddCmd.Flags()
	f.String("file", "", "Read the problem as JSON from this file (- for stdin)")
	f.String("genre", "", "Genre id")
	f.String("tier", "", "Difficulty tier")
	f.String("unit", "", "Curricular unit label (defaults to the genre name)")
	f.String("text", "", "Problem statement")
	f.String("answer", "", "Canonical answer")
	f.StringArray("variant", nil, "Accepted alternate answer (repeatable)")
	f.StringArray("hint", nil, "Hint, revealed in order (repeatable)")
	f.StringArray("chip", nil, "Suggested keypad token (repeatable)")
	f.String("author", os.Getenv("USER"), "Author name")

	lf := problemsListCmd.Flags()
	lf.String("author", "", "Filter by author")
	lf.String("approved", "", "Filter by approval (true or false)")
	lf.String("genre", "", "Filter by genre id")
	lf.String("tier", "", "Filter by tier")
	lf.IntP("limit", "n", 50, "Maximum number of problems to show")
	lf.Bool("json", false, "Print records as JSON")

	problemsCmd.AddCommand(problemsAddCmd)
	problemsCmd.AddCommand(problemsListCmd)
	problemsCmd.AddCommand(problemsApproveCmd)
	problemsCmd.AddCommand(problemsDeleteCmd)
}

func problemInputFromFlags(cmd *cobra.Command) (store.NewProblemInput, error) {
	var in store.NewProblemInput
	flags := cmd.Flags()

	if file, _ := flags.GetString("file"); file != "" {
		r := cmd.InOrStdin()
		if file != "-" {
			fh, err := os.Open(file)
			if err != nil {
				return in, err
			}
			defer fh.Close()
			r = fh
		}
		if err := json.NewDecoder(r).Decode(&in); err != nil {
			return in, fmt.Errorf("decode %s: %w", file, err)
		}
	}

	// Flags override the file.
	setString := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	setList := func(name string, dst *[]string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetStringArray(name)
		}
	}
	setString("genre", &in.Genre)
	setString("tier", &in.Tier)
	setString("unit", &in.Unit)
	setString("text", &in.Text)
	setString("answer", &in.Answer)
	setList("variant", &in.Variants)
	setList("hint", &in.Hints)
	setList("chip", &in.Chips)
	if in.CreatedBy == "" || flags.Changed("author") {
		in.CreatedBy, _ = flags.GetString("author")
	}
	return in, nil
}

func problemFilterFromFlags(cmd *cobra.Command) (store.ProblemFilter, error) {
	var f store.ProblemFilter
	flags := cmd.Flags()

	f.CreatedBy, _ = flags.GetString("author")
	f.Limit, _ = flags.GetInt("limit")

	if v, _ := flags.GetString("approved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, &problem.InputError{Field: "approved", Value: v}
		}
		f.Approved = &b
	}
	if v, _ := flags.GetString("genre"); v != "" {
		g, err := problem.ParseGenre(v)
		if err != nil {
			return f, err
		}
		f.Genre = g
	}
	if v, _ := flags.GetString("tier"); v != "" {
		t, err := problem.ParseTier(v)
		if err != nil {
			return f, err
		}
		f.Tier = &t
	}
	return f, nil
}
