package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/edgequiz/internal/llm"
	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/trivia"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions with answers (no game)",
	Long: `Fetch a question set and print it with answers and explanations.

A developer tool for judging question quality. Calls are recorded in the
LLM audit log under the "preview" purpose.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("difficulty", "d", "medium", "Format: easy, medium, hard or googly")
	previewCmd.Flags().Bool("all", false, "Fetch every format concurrently")
}

// tierResult is one fetched format.
type tierResult struct {
	difficulty quiz.Difficulty
	questions  []quiz.Question
	err        error
	took       time.Duration
}

func runPreview(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	tiers := quiz.Difficulties
	if !all {
		val, _ := cmd.Flags().GetString("difficulty")
		d, err := quiz.ParseDifficulty(val)
		if err != nil {
			return err
		}
		tiers = []quiz.Difficulty{d}
	}

	env, err := openGameEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()
	if env.source == nil {
		return fmt.Errorf("no LLM provider configured")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fetching %d question(s) for %d format(s)...\n\n", env.cfg.Quiz.Questions, len(tiers))

	results := fetchTiers(commandContext(cmd), env.source, tiers, env.cfg.Quiz.Questions, env.cfg.LLM.Timeout)

	failed := 0
	for _, r := range results {
		printTier(out, r)
		if r.err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return fmt.Errorf("every fetch failed")
	}
	return nil
}

// maxPreviewFetches bounds concurrent provider calls in preview --all.
const maxPreviewFetches = 2

// fetchTiers fetches the tiers, at most maxPreviewFetches at a time. A
// failed tier is reported in its result and does not stop the others.
func fetchTiers(ctx context.Context, src trivia.Source, tiers []quiz.Difficulty, count int, timeout time.Duration) []tierResult {
	ctx = llm.WithSessionID(llm.WithPurpose(ctx, "preview"), uuid.NewString())

	results := make([]tierResult, len(tiers))
	var g errgroup.Group
	g.SetLimit(maxPreviewFetches)
	for i, d := range tiers {
		g.Go(func() error {
			fctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				fctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			start := time.Now()
			qs, err := src.FetchQuestions(fctx, d, count)
			results[i] = tierResult{difficulty: d, questions: qs, err: err, took: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func printTier(w io.Writer, r tierResult) {
	title := r.difficulty.CardTitle()
	fmt.Fprintf(w, "══ %s ══  (%s)\n", title, r.took.Round(time.Millisecond))
	if r.err != nil {
		fmt.Fprintf(w, "  fetch failed: %v\n\n", r.err)
		return
	}
	for i, q := range r.questions {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, q.Prompt)
		for j, opt := range q.Options {
			mark := " "
			if j == q.CorrectIndex {
				mark = "✓"
			}
			fmt.Fprintf(w, "   %s %s) %s\n", mark, string(rune('A'+j)), opt)
		}
		if q.Explanation != "" {
			fmt.Fprintf(w, "   Umpire's call: %s\n", q.Explanation)
		}
	}
	fmt.Fprintln(w, "\n"+strings.Repeat("─", 60))
}
