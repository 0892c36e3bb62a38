package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/catalog"
	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/problemgen"
	"github.com/abhisek/mathstudio/internal/store"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft extension problems with the configured LLM provider",
	Long: `Ask the configured LLM provider for new problems of a genre and tier.

Drafts pass the validator chain and are saved unapproved; review them with
"mathstudio problems list --approved=false" and approve the good ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, t, err := genreTierFlags(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		author, _ := cmd.Flags().GetString("author")
		if count < 1 {
			return &problem.InputError{Field: "count", Value: fmt.Sprint(count)}
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		drafter, err := a.Drafter(cmd.Context())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		ctx := cmd.Context()
		repo := a.Store.ProblemRepo()
		input, err := draftInput(ctx, repo, g, t)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		saved := 0
		for i := 1; i <= count; i++ {
			p, err := draftOne(ctx, drafter, input)
			if err != nil {
				logger.Warn("draft failed", zap.Int("n", i), zap.Error(err))
				fmt.Fprintf(out, "draft %d/%d failed: %v\n", i, count, err)
				continue
			}
			rec, err := repo.AddProblem(ctx, store.InputFromProblem(*p, author))
			if err != nil {
				return err
			}
			input.PriorTexts = append(input.PriorTexts, p.Text)
			saved++

			fmt.Fprintf(out, "\n%s\n", rec.ID)
			printProblem(out, rec.Problem, true)
		}
		fmt.Fprintf(out, "\n%d/%d drafts saved for approval\n", saved, count)
		return nil
	},
}

func init() {
	draftCmd.Flags().String("genre", "", "Genre id (required)")
	draftCmd.Flags().String("tier", "normal", "Difficulty tier")
	draftCmd.Flags().Int("count", 1, "Number of problems to draft")
	draftCmd.Flags().String("author", "llm", "Author recorded on the drafts")
	_ = draftCmd.MarkFlagRequired("genre")
}

func draftOne(ctx context.Context, d *problemgen.Drafter, in problemgen.DraftInput) (*problem.Problem, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.LLM.Timeout)
	defer cancel()
	return d.Draft(ctx, in)
}

// draftInput collects existing texts for deduplication and style examples
// from the bank or the stored extension problems.
func draftInput(ctx context.Context, repo store.ProblemRepo, g problem.Genre, t problem.Tier) (problemgen.DraftInput, error) {
	in := problemgen.DraftInput{Genre: g, Tier: t}

	existing := catalog.ByTier(g, t)
	recs, err := repo.ListProblems(ctx, store.ProblemFilter{Genre: g, Tier: &t})
	if err != nil {
		return in, err
	}
	for _, r := range recs {
		existing = append(existing, r.Problem)
	}

	for _, p := range existing {
		in.PriorTexts = append(in.PriorTexts, p.Text)
	}
	in.Examples = existing
	return in, nil
}
