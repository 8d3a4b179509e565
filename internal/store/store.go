// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists a pipeline run's case records in a local
// SQLite database so publishers can query them without re-extracting.
// The record set is write-once per run: ingesting replaces the previous
// set wholesale, mirroring how each pipeline run rebuilds from scratch.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/case-tracker/pkg/types"
)

// Store manages the case SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the case database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cases (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			headline TEXT,
			summary TEXT,
			takeaway TEXT,
			status TEXT NOT NULL,
			outcome TEXT,
			source TEXT,
			url TEXT,
			case_ref TEXT,
			date TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_status ON cases(status)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_source ON cases(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='cases_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE cases_fts USING fts5(title, summary, content=cases, content_rowid=rowid)`,
			`CREATE TRIGGER cases_ai AFTER INSERT ON cases BEGIN
				INSERT INTO cases_fts(rowid, title, summary) VALUES (new.rowid, new.title, new.summary);
			END`,
			`CREATE TRIGGER cases_ad AFTER DELETE ON cases BEGIN
				INSERT INTO cases_fts(cases_fts, rowid, title, summary) VALUES('delete', old.rowid, old.title, old.summary);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Replace swaps the stored record set for the given one inside a single
// transaction and returns the number of records stored.
func (s *Store) Replace(ctx context.Context, records []types.CaseRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cases`); err != nil {
		return 0, fmt.Errorf("clearing previous run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cases (title, headline, summary, takeaway, status, outcome, source, url, case_ref, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if r.Title == "" {
			return 0, fmt.Errorf("refusing to store record with empty title (url %s)", r.URL)
		}
		if _, err := stmt.ExecContext(ctx,
			r.Title, r.Headline, r.Summary, r.Takeaway, string(r.Status),
			r.Outcome, r.Source, r.URL, r.CaseRef, r.Date,
		); err != nil {
			return 0, fmt.Errorf("inserting case %q: %w", r.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing ingest: %w", err)
	}
	return len(records), nil
}

// QueryOptions holds parameters for case queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title and summary.
	Query string

	// Status filters by case status.
	Status types.CaseStatus

	// Source filters by source name.
	Source string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Status == "" && q.Source == ""
}

// Retrieve queries the stored cases with optional full-text search and
// structured filters. Full-text queries come back ranked; filter-only
// queries come back sorted by title.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.CaseRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.title, c.headline, c.summary, c.takeaway, c.status,
				c.outcome, c.source, c.url, c.case_ref, c.date
			FROM cases_fts
			JOIN cases c ON c.rowid = cases_fts.rowid
			WHERE cases_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT c.title, c.headline, c.summary, c.takeaway, c.status,
				c.outcome, c.source, c.url, c.case_ref, c.date
			FROM cases c
			WHERE 1=1`)
	}

	if opts.Status != "" {
		qb.WriteString(` AND c.status = ?`)
		args = append(args, string(opts.Status))
	}
	if opts.Source != "" {
		qb.WriteString(` AND c.source = ?`)
		args = append(args, opts.Source)
	}

	if useFTS {
		qb.WriteString(` ORDER BY cases_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY c.title COLLATE NOCASE`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying cases: %w", err)
	}
	defer rows.Close()

	var results []types.CaseRecord
	for rows.Next() {
		var r types.CaseRecord
		var status string
		if err := rows.Scan(&r.Title, &r.Headline, &r.Summary, &r.Takeaway,
			&status, &r.Outcome, &r.Source, &r.URL, &r.CaseRef, &r.Date); err != nil {
			return nil, fmt.Errorf("scanning case row: %w", err)
		}
		r.Status = types.CaseStatus(status)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Count returns the number of stored cases.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM cases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cases: %w", err)
	}
	return n, nil
}
