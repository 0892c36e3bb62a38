package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice interactively in the terminal",
	Long: `Answer problems one at a time. Type an answer and press Enter.

  ?   reveal the next hint
  q   save progress and quit

Progress is saved on exit and resumed on the next run unless --fresh is set.
With --challenge N a challenge set of N problems is played instead.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("genre", "proportional", "Genre id")
	practiceCmd.Flags().String("tier", "normal", "Difficulty tier (easy, normal, hard, expert)")
	practiceCmd.Flags().Int("challenge", 0, "Play a challenge set of this many problems (1-50)")
	practiceCmd.Flags().Bool("fresh", false, "Ignore saved progress")
}

func runPractice(cmd *cobra.Command, args []string) error {
	g, t, err := genreTierFlags(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("challenge")
	fresh, _ := cmd.Flags().GetBool("fresh")

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	snaps := a.Store.SnapshotRepo()
	s := a.NewSession()

	restored := false
	if !fresh {
		restored, err = s.Restore(ctx, snaps)
		if err != nil {
			logger.Warn("ignoring saved progress", zap.Error(err))
			restored = false
		}
	}
	if restored && !cmd.Flags().Changed("genre") && !cmd.Flags().Changed("tier") {
		st := s.State()
		g, t = st.Genre, st.Tier
	}

	progress := s.Progress()
	switch {
	case count > 0:
		_, err = s.StartChallenge(count, g)
	case progress.InChallenge && !progress.ChallengeComplete:
		// Resume the saved challenge.
	case progress.InChallenge:
		_, err = s.ExitChallenge()
	default:
		_, err = s.Next(g, t)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if restored {
		fmt.Fprintf(out, "Resumed: score %d, %d to review\n", progress.Score, len(progress.WrongAnswers))
	}

	loopErr := practiceLoop(cmd, s, out)

	if err := s.Save(ctx, snaps); err != nil {
		logger.Warn("failed to save progress", zap.Error(err))
	}
	printSummary(out, s.Progress())
	return loopErr
}

func practiceLoop(cmd *cobra.Command, s *session.Session, out io.Writer) error {
	ctx := cmd.Context()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	show := true

	for {
		p, ok := s.Current()
		if !ok {
			return nil
		}
		if show {
			fmt.Fprintln(out)
			if label := challengeLabel(s); label != "" {
				fmt.Fprintf(out, "[%s] ", label)
			}
			printProblem(out, p, false)
			show = false
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch line := strings.TrimSpace(scanner.Text()); line {
		case "":
			continue
		case "q":
			return nil
		case "?":
			i, h, err := s.RequestHint()
			if err != nil {
				return err
			}
			if i < 0 {
				fmt.Fprintln(out, "(no hints)")
				continue
			}
			fmt.Fprintf(out, "hint %d/%d: %s\n", i+1, len(p.Hints), h)
			continue
		default:
			res, err := s.Check(ctx, line)
			if err != nil {
				return err
			}
			if !res.Correct {
				fmt.Fprintf(out, "✗ %s\n", res.Encouragement)
				continue
			}
			fmt.Fprintf(out, "✓ +%d  score %d  streak %d\n", res.Points, res.Score, res.Streak)
		}

		done, err := advance(s)
		if err != nil {
			return err
		}
		if done {
			fmt.Fprintln(out, "\nChallenge complete!")
			return nil
		}
		show = true
	}
}

// advance serves the next problem: the next challenge problem in a
// challenge, otherwise a fresh one of the selected genre and tier.
func advance(s *session.Session) (bool, error) {
	if s.Progress().InChallenge {
		return s.Advance()
	}
	st := s.State()
	_, err := s.Next(st.Genre, st.Tier)
	return false, err
}

func challengeLabel(s *session.Session) string {
	p := s.Progress()
	if !p.InChallenge {
		return ""
	}
	return fmt.Sprintf("%d/%d", p.ChallengePosition, p.ChallengeTotal)
}

func printSummary(w io.Writer, p session.Progress) {
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "Score:    %d\n", p.Score)
	fmt.Fprintf(w, "Answered: %d/%d correct (%.0f%%)\n", p.Correct, p.Attempts, p.Accuracy*100)
	if n := len(p.WrongAnswers); n > 0 {
		fmt.Fprintf(w, "Review:   %d problems\n", n)
	}
}
