// Package console implements the interactive text-mode interface: a
// numbered menu over the deck, the practice session, and the deck
// file. It is a thin wrapper; all card semantics live below it.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keziahdorothy14/flashsprint/internal/deck"
	"github.com/keziahdorothy14/flashsprint/internal/deckfile"
	"github.com/keziahdorothy14/flashsprint/internal/history"
	"github.com/keziahdorothy14/flashsprint/internal/logger"
	"github.com/keziahdorothy14/flashsprint/internal/models"
	"github.com/keziahdorothy14/flashsprint/internal/scheduler"
	"github.com/keziahdorothy14/flashsprint/internal/srs"
)

type styles struct {
	title    lipgloss.Style
	question lipgloss.Style
	answer   lipgloss.Style
	tag      lipgloss.Style
	good     lipgloss.Style
	bad      lipgloss.Style
}

func newStyles(colors bool) styles {
	if !colors {
		plain := lipgloss.NewStyle()
		return styles{title: plain, question: plain, answer: plain, tag: plain, good: plain, bad: plain}
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		question: lipgloss.NewStyle().Bold(true),
		answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		good:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		bad:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Console runs the interactive menu over one deck. Input and output
// are injected so tests can drive it.
type Console struct {
	deck     *deck.Deck
	history  *history.DB
	deckPath string
	in       *bufio.Scanner
	out      io.Writer
	styles   styles
}

// New creates a console. history may be nil, which disables the stats
// view and review recording.
func New(d *deck.Deck, h *history.DB, deckPath string, in io.Reader, out io.Writer, colors bool) *Console {
	return &Console{
		deck:     d,
		history:  h,
		deckPath: deckPath,
		in:       bufio.NewScanner(in),
		out:      out,
		styles:   newStyles(colors),
	}
}

// Deck returns the console's current deck. Loading a file swaps it.
func (c *Console) Deck() *deck.Deck {
	return c.deck
}

// readLine returns the next input line with the trailing newline
// trimmed. ok is false at EOF.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimRight(c.in.Text(), "\r"), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Run loops over the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.printf("%s\n", c.styles.title.Render("FlashSprint — spaced repetition flashcards"))
	for {
		c.printf("\nMenu:\n")
		c.printf(" 1) Practice\n")
		c.printf(" 2) Add card\n")
		c.printf(" 3) Delete card\n")
		c.printf(" 4) Search by tag\n")
		c.printf(" 5) List all cards\n")
		c.printf(" 6) Save to file\n")
		c.printf(" 7) Load from file\n")
		c.printf(" 8) Stats\n")
		c.printf(" 9) Exit\n")
		c.printf("Choose option: ")
		choice, ok := c.readLine()
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			c.practice(ctx)
		case "2":
			c.addCard()
		case "3":
			c.deleteCard()
		case "4":
			c.searchByTag()
		case "5":
			c.listCards()
		case "6":
			c.save()
		case "7":
			c.load()
		case "8":
			c.stats(ctx)
		case "9":
			c.printf("Goodbye.\n")
			return nil
		default:
			c.printf("Unknown option.\n")
		}
	}
}

// practice drives one review session. 'q' at either prompt stops and
// requeues the current card unchanged.
func (c *Console) practice(ctx context.Context) {
	if c.deck.Queue().Len() == 0 {
		c.printf("No cards in the queue. Add some first.\n")
		return
	}
	c.printf("Starting practice. Enter 'q' at any prompt to stop practicing.\n")

	var recorder scheduler.Recorder
	if c.history != nil {
		recorder = c.history
	}
	session := scheduler.NewSession(c.deck.Queue(), recorder)

	for {
		switch session.Phase() {
		case scheduler.Scanning:
			session.Next()
		case scheduler.Presenting:
			card := session.Card()
			c.printf("\n---\nCard #%d\n%s %s\n", card.ID, c.styles.question.Render("Q:"), card.Question)
			c.printf("(press Enter to see answer, 'q' to stop)\n")
			line, ok := c.readLine()
			if !ok || strings.TrimSpace(line) == "q" {
				session.Stop()
				continue
			}
			c.printf("%s %s\n", c.styles.answer.Render("A:"), card.Answer)
			c.printf("Did you answer correctly? (y/n) or 'q' to stop: ")
			line, ok = c.readLine()
			if !ok || strings.TrimSpace(line) == "q" {
				session.Grade(ctx, srs.Cancel)
				continue
			}
			if answer := strings.TrimSpace(line); answer == "y" || answer == "Y" {
				session.Grade(ctx, srs.Correct)
				c.printf("%s\n", c.styles.good.Render(fmt.Sprintf("Nice! Interval now %d rotations.", card.Interval)))
			} else {
				session.Grade(ctx, srs.Incorrect)
				c.printf("%s\n", c.styles.bad.Render("Keep practicing - interval reset to 1."))
			}
		case scheduler.Empty:
			c.printf("Queue empty.\n")
			return
		case scheduler.Stopped:
			c.printf("Exiting practice.\n")
			return
		}
	}
}

func (c *Console) addCard() {
	c.printf("Enter question (single line):\n")
	question, ok := c.readLine()
	if !ok {
		return
	}
	if strings.TrimSpace(question) == "" {
		c.printf("Empty question - cancelled.\n")
		return
	}
	c.printf("Enter answer (single line):\n")
	answer, ok := c.readLine()
	if !ok {
		return
	}
	c.printf("Enter tags (comma-separated, e.g., 'stack,queue'):\n")
	tagLine, ok := c.readLine()
	if !ok {
		return
	}

	card, err := c.deck.Add(question, answer, splitTags(tagLine))
	if err != nil {
		c.printf("Could not add card: %v\n", err)
		return
	}
	c.printf("Added card ID %d\n", card.ID)
}

func (c *Console) deleteCard() {
	c.printf("Enter card ID to delete: ")
	line, ok := c.readLine()
	if !ok {
		return
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		c.printf("Not a card ID: %s\n", line)
		return
	}
	if err := c.deck.Remove(id); err != nil {
		c.printf("No card with ID %d\n", id)
		return
	}
	c.printf("Deleted card #%d\n", id)
}

func (c *Console) searchByTag() {
	c.printf("Enter tag to search: ")
	tag, ok := c.readLine()
	if !ok {
		return
	}
	cards := c.deck.SearchTag(tag)
	if len(cards) == 0 {
		c.printf("No cards found for tag '%s'\n", strings.ToLower(strings.TrimSpace(tag)))
		return
	}
	c.printf("Cards with tag '%s':\n", strings.ToLower(strings.TrimSpace(tag)))
	for _, card := range cards {
		c.printCard(card, false)
	}
}

func (c *Console) listCards() {
	cards := c.deck.List()
	if len(cards) == 0 {
		c.printf("No cards.\n")
		return
	}
	c.printf("All cards:\n")
	for _, card := range cards {
		c.printCard(card, true)
	}
}

func (c *Console) printCard(card *models.Card, truncate bool) {
	question := card.Question
	if truncate && len(question) > 60 {
		question = question[:60] + "..."
	}
	tags := c.styles.tag.Render(strings.Join(card.Tags, " "))
	c.printf("ID %d: Q: %s | tags: %s | interval=%d due_in=%d\n",
		card.ID, question, tags, card.Interval, card.DueIn)
}

func (c *Console) save() {
	c.printf("Enter filename to save [%s]: ", c.deckPath)
	path, ok := c.readLine()
	if !ok {
		return
	}
	if path = strings.TrimSpace(path); path == "" {
		path = c.deckPath
	}
	if err := deckfile.Save(path, c.deck.List()); err != nil {
		c.printf("Save failed: %v\n", err)
		return
	}
	c.printf("Saved %s\n", path)
}

// load parses the file into a fresh deck and swaps it in only when the
// file could be opened, so a bad path never drops the current cards.
func (c *Console) load() {
	c.printf("Enter filename to load [%s]: ", c.deckPath)
	path, ok := c.readLine()
	if !ok {
		return
	}
	if path = strings.TrimSpace(path); path == "" {
		path = c.deckPath
	}
	loadedDeck := deck.New()
	loaded, skipped, err := deckfile.Load(path, loadedDeck)
	if err != nil {
		c.printf("Load failed: %v\n", err)
		return
	}
	c.deck = loadedDeck
	c.printf("Loaded %s (%d cards", path, loaded)
	if skipped > 0 {
		c.printf(", %d malformed records skipped", skipped)
	}
	c.printf(")\n")
}

func (c *Console) stats(ctx context.Context) {
	if c.history == nil {
		c.printf("Review history is disabled.\n")
		return
	}
	stat, err := c.history.Stats(ctx, history.RecordFilter{})
	if err != nil {
		logger.FromContext(ctx).Error("failed to load stats: %v", err)
		c.printf("Could not load stats.\n")
		return
	}
	c.printf("Reviews: %d (correct: %d, incorrect: %d)\n", stat.Reviews, stat.Correct, stat.Incorrect)

	records, err := c.history.Records(ctx, history.RecordFilter{Limit: 5})
	if err != nil || len(records) == 0 {
		return
	}
	c.printf("Recent:\n")
	for _, rec := range records {
		c.printf("  card #%d %s at %s (interval=%d)\n",
			rec.CardID, rec.Verdict, rec.ReviewedAt.Format("2006-01-02 15:04"), rec.Interval)
	}
}

func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
