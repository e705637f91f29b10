package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/keziahdorothy14/flashsprint/internal/config"
	"github.com/keziahdorothy14/flashsprint/internal/console"
	"github.com/keziahdorothy14/flashsprint/internal/deck"
	"github.com/keziahdorothy14/flashsprint/internal/deckfile"
	"github.com/keziahdorothy14/flashsprint/internal/history"
	"github.com/keziahdorothy14/flashsprint/internal/logger"
)

var (
	flagDeck      string
	flagHistoryDB string
	flagLogLevel  string
	flagNoColor   bool
)

// rootCmd starts the interactive console.
var rootCmd = &cobra.Command{
	Use:   "flashsprint",
	Short: "Spaced repetition flashcards in your terminal",
	Long: `FlashSprint is a flashcard study tool using rotation-based spaced
repetition: correct answers double a card's review interval, incorrect
answers reset it. Run without arguments for the interactive menu.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDeck, "deck", "", "deck file path (default $DECK_PATH or flashsprint.deck)")
	rootCmd.PersistentFlags().StringVar(&flagHistoryDB, "history-db", "", "review history database path (default $HISTORY_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges environment configuration with flag overrides and
// installs the default logger.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if flagDeck != "" {
		cfg.DeckPath = flagDeck
	}
	if flagHistoryDB != "" {
		cfg.HistoryDBPath = flagHistoryDB
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.SetDefault(logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(!cfg.NoColor),
	))
	return cfg, nil
}

// openDeck loads the configured deck file. A missing file is a fresh
// start: the deck is seeded with the sample cards.
func openDeck(cfg config.Config) (*deck.Deck, error) {
	d := deck.New()
	if _, err := os.Stat(cfg.DeckPath); err != nil {
		if os.IsNotExist(err) {
			logger.Info("no deck file at %s, starting with sample cards", cfg.DeckPath)
			d.SeedSamples()
			return d, nil
		}
		return nil, err
	}
	loaded, skipped, err := deckfile.Load(cfg.DeckPath, d)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logger.Warn("deck loaded: %d cards, %d malformed records skipped", loaded, skipped)
	} else {
		logger.Info("deck loaded: %d cards", loaded)
	}
	return d, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := openDeck(cfg)
	if err != nil {
		return err
	}

	// Review history is best effort: the app still works without it.
	h, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		logger.Warn("review history disabled: %v", err)
		h = nil
	} else {
		defer h.Close()
	}

	con := console.New(d, h, cfg.DeckPath, os.Stdin, os.Stdout, !cfg.NoColor)
	if err := con.Run(context.Background()); err != nil {
		return err
	}

	// Persist whatever deck the session ended with.
	if err := deckfile.Save(cfg.DeckPath, con.Deck().List()); err != nil {
		logger.Error("failed to save deck: %v", err)
		return err
	}
	logger.Info("deck saved: %s", cfg.DeckPath)
	return nil
}
