package cmd

import (
	"fmt"
	"io"

	"kitinstall/internal/db"
	"kitinstall/internal/model"
	"kitinstall/internal/repository"

	"github.com/spf13/cobra"
)

var (
	historyN   int
	historyRun string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recently installed files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.HistoryDB == "" {
			return fmt.Errorf("install history is disabled (history_db is empty)")
		}

		if err := db.Init(cfg.HistoryDB); err != nil {
			return err
		}
		defer db.Close()

		repo := repository.NewHistoryRepository()
		out := cmd.OutOrStdout()

		if historyRun != "" {
			histories, err := repo.GetRun(historyRun)
			if err != nil {
				return fmt.Errorf("failed to load run %s: %w", historyRun, err)
			}
			if len(histories) == 0 {
				return fmt.Errorf("no history for run %s", historyRun)
			}

			printHistory(out, histories)
			fmt.Fprintf(out, "run %s: %d file(s)\n", historyRun, len(histories))
			return nil
		}

		histories, err := repo.GetRecent(historyN)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(histories) == 0 {
			fmt.Fprintln(out, "no history yet")
			return nil
		}

		printHistory(out, histories)

		stats, err := repo.GetStats()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "total: %d installed, %d skipped, %d failed\n",
			stats.Installed, stats.Skipped, stats.Failed)
		return nil
	},
}

func printHistory(out io.Writer, histories []model.History) {
	for _, h := range histories {
		mark := "✓"
		switch h.Status {
		case model.OutcomeFailed:
			mark = "✗"
		case model.OutcomeSkipped:
			mark = "-"
		}

		fmt.Fprintf(out, "%s [%s] %-9s %s\n",
			mark,
			h.InstalledAt.Format("2006-01-02 15:04:05"),
			h.Status,
			h.LocalPath,
		)
	}
}

func init() {
	historyCmd.Flags().IntVar(&historyN, "n", 20, "number of history entries to show")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "show every file of one install run")
	rootCmd.AddCommand(historyCmd)
}
