// Package deckfile reads and writes the deck's flat-file format: one
// field per line (ID=, Q=, A=, T=, I=, D=), records separated by a
// "---" sentinel line. The format is line oriented, so questions and
// answers are single lines.
package deckfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/keziahdorothy14/flashsprint/internal/deck"
	"github.com/keziahdorothy14/flashsprint/internal/errors"
	"github.com/keziahdorothy14/flashsprint/internal/logger"
	"github.com/keziahdorothy14/flashsprint/internal/models"
)

const sentinel = "---"

// Save writes all cards to path, replacing any previous content.
func Save(path string, cards []*models.Card) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewInternalError(err)
	}
	defer f.Close()

	if err := Write(f, cards); err != nil {
		return err
	}
	return f.Sync()
}

// Write emits every card as one record. The writer is buffered here so
// callers can hand in a bare os.File.
func Write(w io.Writer, cards []*models.Card) error {
	bw := bufio.NewWriter(w)
	for _, c := range cards {
		fmt.Fprintf(bw, "ID=%d\n", c.ID)
		fmt.Fprintf(bw, "Q=%s\n", c.Question)
		fmt.Fprintf(bw, "A=%s\n", c.Answer)
		fmt.Fprintf(bw, "T=%s\n", strings.Join(c.Tags, ","))
		fmt.Fprintf(bw, "I=%d\n", c.Interval)
		fmt.Fprintf(bw, "D=%d\n", c.DueIn)
		fmt.Fprintln(bw, sentinel)
	}
	if err := bw.Flush(); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

// Load reads the file at path into d and reports how many records were
// restored and how many were skipped as malformed. A missing file is
// an error; a malformed record is not.
func Load(path string, d *deck.Deck) (loaded, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, errors.NewInternalError(err)
	}
	defer f.Close()
	return Read(f, d)
}

// record accumulates one card's fields during parsing. hasQ/hasA track
// line presence: an answer may legitimately be the empty string, but a
// record with no A= line at all is malformed.
type record struct {
	id       int
	question string
	answer   string
	tags     []string
	interval int
	dueIn    int
	hasQ     bool
	hasA     bool
}

func newRecord() record {
	return record{interval: 1}
}

// Read parses records from r and restores each valid one into d.
// Records missing a question or answer line, and records the deck
// rejects (bad or duplicate id), are skipped with a warning; already
// restored records stay committed. A record not terminated by the
// sentinel is still flushed at EOF.
func Read(r io.Reader, d *deck.Deck) (loaded, skipped int, err error) {
	log := logger.Default().WithPrefix("deckfile")

	flush := func(rec record) {
		if !rec.hasQ || !rec.hasA {
			err := errors.NewMalformedRecordError(fmt.Sprintf("id=%d missing question or answer", rec.id))
			log.Warn("skipping record: %v", err)
			skipped++
			return
		}
		if _, err := d.Restore(rec.id, rec.question, rec.answer, rec.tags, rec.interval, rec.dueIn); err != nil {
			log.Warn("skipping record: %v", err)
			skipped++
			return
		}
		loaded++
	}

	rec := newRecord()
	sawField := false
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case line == sentinel:
			if sawField {
				flush(rec)
			}
			rec = newRecord()
			sawField = false
		case strings.HasPrefix(line, "ID="):
			rec.id, _ = strconv.Atoi(line[3:])
			sawField = true
		case strings.HasPrefix(line, "Q="):
			rec.question = line[2:]
			rec.hasQ = true
			sawField = true
		case strings.HasPrefix(line, "A="):
			rec.answer = line[2:]
			rec.hasA = true
			sawField = true
		case strings.HasPrefix(line, "T="):
			rec.tags = splitTags(line[2:])
			sawField = true
		case strings.HasPrefix(line, "I="):
			rec.interval, _ = strconv.Atoi(line[2:])
			sawField = true
		case strings.HasPrefix(line, "D="):
			rec.dueIn, _ = strconv.Atoi(line[2:])
			sawField = true
		}
	}
	if err := scanner.Err(); err != nil {
		return loaded, skipped, errors.NewInternalError(err)
	}
	// Trailing record without a closing sentinel.
	if sawField {
		flush(rec)
	}
	return loaded, skipped, nil
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
