package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"skillcheck/internal/assess"
	"skillcheck/internal/leaderboard"
	"skillcheck/internal/llm"
)

var takeCmd = &cobra.Command{
	Use:   "take <topic>",
	Short: "Take a generated assessment on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := requireUser(cmd, st)
		if err != nil {
			return err
		}

		difficulty, _ := cmd.Flags().GetString("difficulty")
		category, _ := cmd.Flags().GetString("category")
		count, _ := cmd.Flags().GetInt("count")
		if difficulty == "" {
			difficulty = cfg.Defaults.Difficulty
		}
		if category == "" {
			category = cfg.Defaults.Category
		}
		if count <= 0 {
			count = cfg.Defaults.QuestionCount
		}
		if count > 20 {
			return fmt.Errorf("at most 20 questions per assessment")
		}

		genCfg := cfg.GenerationConfig()
		provider, err := llm.NewProvider(cmd.Context(), genCfg, st.GenerationLogs())
		if err != nil {
			return fmt.Errorf("configure generation: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), genCfg.Timeout)
		defer cancel()

		fmt.Printf("Generating %d %s questions on %q...\n", count, difficulty, topic)
		gen := assess.New(provider, assess.DefaultConfig())
		a, err := gen.Generate(ctx, assess.GenerateInput{
			Topic:         topic,
			Difficulty:    assess.Difficulty(difficulty),
			Category:      assess.Category(category),
			QuestionCount: count,
		})
		if err != nil {
			return err
		}

		sub := runQuiz(a, os.Stdin)

		board := leaderboard.NewService(st.Leaderboard())
		svc := assess.NewService(st.Scores(), st.History(), st.Certificates(), board)
		out, err := svc.Submit(cmd.Context(), user.ID, a, sub)
		if err != nil {
			return err
		}

		printResult(out)
		return nil
	},
}

func init() {
	takeCmd.Flags().StringP("difficulty", "d", "", "Question difficulty: easy, medium, hard")
	takeCmd.Flags().StringP("category", "c", "", "Test category: technical, soft-skill, domain, language")
	takeCmd.Flags().IntP("count", "n", 0, "Number of questions (1-20)")
}

// runQuiz walks the user through the questions on the terminal and
// collects their choices. Blank or invalid input leaves the question
// unanswered.
func runQuiz(a *assess.Assessment, in *os.File) assess.Submission {
	reader := bufio.NewReader(in)
	sub := assess.Submission{}

	fmt.Printf("\n%d questions, suggested time %d minutes. Answer with a-d, or press Enter to skip.\n",
		len(a.Questions), a.TimeLimitSeconds/60)

	for i, q := range a.Questions {
		fmt.Printf("\nQ%d. %s\n", i+1, q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %c) %s\n", 'a'+j, opt)
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "" {
			continue
		}
		if choice >= "a" && choice <= "d" && len(choice) == 1 {
			sub[i] = choice
		}
	}

	return sub
}

func printResult(out *assess.Outcome) {
	r := out.Result
	fmt.Printf("\nScore: %d/%d (%.1f%%)\n", r.CorrectCount, r.Total, r.Percentage)
	fmt.Printf("Level: %s\n", r.Level)
	if out.CertificateID != "" {
		fmt.Printf("Certificate earned: %s\n", out.CertificateID)
	}
}
