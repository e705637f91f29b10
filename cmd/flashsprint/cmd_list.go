package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// listCmd prints every card in the deck.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := openDeck(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cards := d.List()
	if len(cards) == 0 {
		fmt.Fprintln(out, "No cards.")
		return nil
	}
	for _, c := range cards {
		fmt.Fprintf(out, "ID %d: Q: %s | tags: %s | interval=%d due_in=%d\n",
			c.ID, c.Question, strings.Join(c.Tags, " "), c.Interval, c.DueIn)
	}
	return nil
}
