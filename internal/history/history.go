// Package history persists the review log in a local SQLite database.
// The deck itself lives in the flat deck file; history is append-only
// and survives deck reloads.
package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/keziahdorothy14/flashsprint/internal/logger"
	"github.com/keziahdorothy14/flashsprint/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type DB struct {
	*sql.DB
	log *logger.Logger
}

// Open opens (or creates) the history database at path and applies
// pending migrations.
func Open(path string) (*DB, error) {
	log := logger.Default().WithPrefix("history")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Debug("opening history database: %s", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open history database: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // sqlite allows one writer at a time

	db := &DB{DB: sqlDB, log: log}
	if err := db.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		return nil, err
	}
	return db, nil
}

func (db *DB) applyMigrations(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		version := entry.Name()
		applied, err := db.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		db.log.Debug("applying migration: %s", version)
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT version FROM schema_migrations WHERE version = ?`, version).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// Record appends one graded review. Implements scheduler.Recorder.
func (db *DB) Record(ctx context.Context, rec models.ReviewRecord) error {
	log := logger.FromContext(ctx).WithPrefix("history")
	log.Debug("recording review: card_id=%d, verdict=%s", rec.CardID, rec.Verdict)

	reviewedAt := rec.ReviewedAt
	if reviewedAt.IsZero() {
		reviewedAt = time.Now()
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO review_history (card_id, verdict, interval, due_in, reviewed_at)
VALUES (?, ?, ?, ?, ?)
`, rec.CardID, rec.Verdict, rec.Interval, rec.DueIn, reviewedAt)
	if err != nil {
		log.Error("failed to record review: %v", err)
	}
	return err
}

// RecordFilter narrows history queries. Zero values mean "no filter".
type RecordFilter struct {
	CardID  int
	Verdict string
	Since   time.Time
	Limit   int
}

func (f RecordFilter) apply(query squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.CardID != 0 {
		query = query.Where(squirrel.Eq{"card_id": f.CardID})
	}
	if f.Verdict != "" {
		query = query.Where(squirrel.Eq{"verdict": f.Verdict})
	}
	if !f.Since.IsZero() {
		query = query.Where(squirrel.GtOrEq{"reviewed_at": f.Since})
	}
	return query
}

// Records returns matching reviews, most recent first.
func (db *DB) Records(ctx context.Context, filter RecordFilter) ([]models.ReviewRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("history")

	query := filter.apply(sqlBuilder.
		Select("id", "card_id", "verdict", "interval", "due_in", "reviewed_at").
		From("review_history")).
		OrderBy("reviewed_at DESC", "id DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query review history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.ReviewRecord
	for rows.Next() {
		var rec models.ReviewRecord
		if err := rows.Scan(&rec.ID, &rec.CardID, &rec.Verdict, &rec.Interval, &rec.DueIn, &rec.ReviewedAt); err != nil {
			log.Error("failed to scan review row: %v", err)
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Stats summarizes matching reviews.
func (db *DB) Stats(ctx context.Context, filter RecordFilter) (*models.HistoryStat, error) {
	log := logger.FromContext(ctx).WithPrefix("history")

	query := filter.apply(sqlBuilder.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(CASE WHEN verdict = 'correct' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN verdict = 'incorrect' THEN 1 ELSE 0 END), 0)",
		).
		From("review_history"))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	var stat models.HistoryStat
	if err := db.QueryRowContext(ctx, sqlStr, args...).Scan(&stat.Reviews, &stat.Correct, &stat.Incorrect); err != nil {
		log.Error("failed to query review stats: %v", err)
		return nil, err
	}
	return &stat, nil
}
