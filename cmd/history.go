package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your past assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := requireUser(cmd, st)
		if err != nil {
			return err
		}

		rows, err := st.History().ByUser(cmd.Context(), user.ID, limit)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No assessments taken yet.")
			return nil
		}

		fmt.Printf("%-16s  %-20s  %-10s  %-7s  %-7s  %s\n", "When", "Topic", "Difficulty", "Score", "%", "Level")
		fmt.Println(strings.Repeat("─", 80))
		for _, h := range rows {
			fmt.Printf("%-16s  %-20s  %-10s  %d/%-5d  %-7.1f  %s\n",
				h.TakenAt.Local().Format("2006-01-02 15:04"),
				h.Topic,
				h.Difficulty,
				h.CorrectCount,
				h.TotalQuestions,
				h.Percentage,
				h.Level,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum rows to show")
}
