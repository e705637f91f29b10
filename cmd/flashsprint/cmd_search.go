package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd looks cards up by tag.
var searchCmd = &cobra.Command{
	Use:   "search <tag>",
	Short: "Find cards by tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := openDeck(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cards := d.SearchTag(args[0])
	if len(cards) == 0 {
		fmt.Fprintf(out, "No cards found for tag '%s'\n", strings.ToLower(strings.TrimSpace(args[0])))
		return nil
	}
	for _, c := range cards {
		fmt.Fprintf(out, "ID %d: Q: %s | tags: %s | interval=%d due_in=%d\n",
			c.ID, c.Question, strings.Join(c.Tags, " "), c.Interval, c.DueIn)
	}
	return nil
}
