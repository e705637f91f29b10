package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keziahdorothy14/flashsprint/internal/deckfile"
)

var flagTags string

// addCmd creates a card without entering the interactive menu.
var addCmd = &cobra.Command{
	Use:   "add <question> <answer>",
	Short: "Add a card to the deck",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagTags, "tags", "", "comma-separated tags")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := openDeck(cfg)
	if err != nil {
		return err
	}

	var tags []string
	for _, t := range strings.Split(flagTags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	card, err := d.Add(args[0], args[1], tags)
	if err != nil {
		return err
	}
	if err := deckfile.Save(cfg.DeckPath, d.List()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added card ID %d\n", card.ID)
	return nil
}
