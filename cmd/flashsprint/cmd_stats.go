package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keziahdorothy14/flashsprint/internal/history"
)

var flagStatsCard int

// statsCmd summarizes the review history.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review history statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsCard, "card", 0, "restrict to one card id")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	h, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		return err
	}
	defer h.Close()

	ctx := context.Background()
	filter := history.RecordFilter{CardID: flagStatsCard}
	stat, err := h.Stats(ctx, filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Reviews: %d (correct: %d, incorrect: %d)\n", stat.Reviews, stat.Correct, stat.Incorrect)

	filter.Limit = 10
	records, err := h.Records(ctx, filter)
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Fprintf(out, "  card #%d %s at %s (interval=%d due_in=%d)\n",
			rec.CardID, rec.Verdict, rec.ReviewedAt.Format("2006-01-02 15:04"), rec.Interval, rec.DueIn)
	}
	return nil
}
