package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Table names.
const (
	tableProblems     = "problems"
	tableAttempts     = "attempts"
	tableResults      = "results"
	tableWrongAnswers = "wrong_answers"
	tableSnapshots    = "snapshots"
	tableLLMRequests  = "llm_requests"
	tableSequence     = "sequence"
)

// schema lists the DDL applied on Open. Statements are idempotent; columns
// are only ever added, never altered.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sequence (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL
	)`,
	`INSERT OR IGNORE INTO sequence (id, next_val) VALUES (1, 1)`,

	`CREATE TABLE IF NOT EXISTS problems (
		id          TEXT PRIMARY KEY,
		genre       TEXT NOT NULL,
		tier        INTEGER NOT NULL,
		unit        TEXT NOT NULL DEFAULT '',
		text        TEXT NOT NULL,
		answer      TEXT NOT NULL,
		variants    TEXT NOT NULL DEFAULT '[]',
		hints       TEXT NOT NULL DEFAULT '[]',
		chips       TEXT NOT NULL DEFAULT '[]',
		created_by  TEXT NOT NULL DEFAULT '',
		approved    INTEGER NOT NULL DEFAULT 0,
		created_at  INTEGER NOT NULL,
		approved_at INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS problems_genre_tier ON problems (genre, tier, approved)`,

	`CREATE TABLE IF NOT EXISTS attempts (
		id          TEXT PRIMARY KEY,
		sequence    INTEGER NOT NULL UNIQUE,
		session_id  TEXT NOT NULL,
		problem_id  TEXT NOT NULL,
		genre       TEXT NOT NULL,
		tier        INTEGER NOT NULL,
		source      TEXT NOT NULL,
		answer      TEXT NOT NULL,
		correct     INTEGER NOT NULL,
		hints_used  INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS attempts_genre_tier ON attempts (genre, tier)`,

	`CREATE TABLE IF NOT EXISTS results (
		id         TEXT PRIMARY KEY,
		sequence   INTEGER NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		problem_id TEXT NOT NULL,
		genre      TEXT NOT NULL,
		tier       INTEGER NOT NULL,
		points     INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS wrong_answers (
		id         TEXT PRIMARY KEY,
		sequence   INTEGER NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		problem_id TEXT NOT NULL,
		genre      TEXT NOT NULL,
		tier       INTEGER NOT NULL,
		text       TEXT NOT NULL,
		given      TEXT NOT NULL,
		expected   TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS snapshots (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence   INTEGER NOT NULL,
		timestamp  INTEGER NOT NULL,
		data       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS llm_requests (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL DEFAULT '',
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		cost_usd      REAL NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT '',
		created_at    INTEGER NOT NULL
	)`,
}

// migrate creates every table and index that does not exist yet.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
