package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"skillcheck/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [topic]",
	Short: "Show the leaderboard for a topic, or the overall board",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overall, _ := cmd.Flags().GetBool("overall")
		limit, _ := cmd.Flags().GetInt("limit")

		if !overall && len(args) == 0 {
			return fmt.Errorf("name a topic or pass --overall")
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		board := leaderboard.NewService(st.Leaderboard())
		ctx := cmd.Context()

		if overall {
			entries, err := board.Overall(ctx, limit)
			if err != nil {
				return fmt.Errorf("read overall leaderboard: %w", err)
			}
			if len(entries) == 0 {
				fmt.Printf("Nobody has competed in %d or more topics yet.\n", leaderboard.OverallMinTopics)
				return nil
			}

			fmt.Printf("%-4s  %-20s  %-7s  %s\n", "#", "User", "Topics", "Avg %")
			fmt.Println(strings.Repeat("─", 44))
			for i, e := range entries {
				fmt.Printf("%-4d  %-20s  %-7d  %.1f\n", i+1, e.Username, e.Topics, e.AvgPercentage)
			}
			return nil
		}

		topic := args[0]
		entries, err := board.Top(ctx, topic, limit)
		if err != nil {
			return fmt.Errorf("read leaderboard: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No scores recorded for %q yet.\n", topic)
			return nil
		}

		fmt.Printf("%-4s  %-20s  %-7s  %-7s  %s\n", "Rank", "User", "Score", "%", "When")
		fmt.Println(strings.Repeat("─", 60))
		for _, e := range entries {
			fmt.Printf("%-4d  %-20s  %d/%-5d  %-7.1f  %s\n",
				e.Rank,
				e.Username,
				e.Score,
				e.TotalQuestions,
				e.Percentage,
				e.UpdatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().Bool("overall", false, "Show the cross-topic average board")
	leaderboardCmd.Flags().Int("limit", 20, "Maximum entries to show")
}
