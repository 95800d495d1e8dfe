// Package journal records submitted answers in a SQLite database for the running session.
package journal

import (
	"context"
	"database/sql"
	"time"

	"github.com/verte-zerg/linequiz/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN keeps the journal in process memory only.
const MemoryDSN = ":memory:"

// Journal wraps SQLite access for attempt data.
type Journal struct {
	db *sql.DB
}

// Open opens the journal at dsn and applies migrations. An empty dsn means MemoryDSN.
func Open(dsn string) (*Journal, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return j, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			target_x REAL NOT NULL,
			target_y REAL NOT NULL,
			input TEXT NOT NULL,
			parsed INTEGER NOT NULL,
			slope REAL,
			intercept REAL,
			correct INTEGER NOT NULL,
			submitted_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_session_round ON attempts(session_id, round);`,
	}
	for _, stmt := range stmts {
		if _, err := j.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record stores one attempt and returns its row id.
func (j *Journal) Record(ctx context.Context, a model.Attempt) (int64, error) {
	var slope, intercept sql.NullFloat64
	if a.Line != nil {
		slope = sql.NullFloat64{Float64: a.Line.M, Valid: true}
		intercept = sql.NullFloat64{Float64: a.Line.B, Valid: true}
	}
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO attempts (session_id, round, target_x, target_y, input, parsed, slope, intercept, correct, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.SessionID,
		a.Round,
		a.Target.X,
		a.Target.Y,
		a.Input,
		boolInt(a.Line != nil),
		slope,
		intercept,
		boolInt(a.Correct),
		a.SubmittedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns up to limit attempts of a session, newest first.
func (j *Journal) Recent(ctx context.Context, sessionID string, limit int) ([]model.Attempt, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT session_id, round, target_x, target_y, input, slope, intercept, correct, submitted_at
		 FROM attempts
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Attempt
	for rows.Next() {
		var a model.Attempt
		var slope, intercept sql.NullFloat64
		var correct int
		var submittedAt string
		if err := rows.Scan(&a.SessionID, &a.Round, &a.Target.X, &a.Target.Y, &a.Input, &slope, &intercept, &correct, &submittedAt); err != nil {
			return nil, err
		}
		if slope.Valid && intercept.Valid {
			a.Line = &model.Line{M: slope.Float64, B: intercept.Float64}
		}
		a.Correct = correct != 0
		parsed, err := time.Parse(time.RFC3339Nano, submittedAt)
		if err != nil {
			return nil, err
		}
		a.SubmittedAt = parsed
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Rounds summarizes a session's attempts per round, oldest round first.
func (j *Journal) Rounds(ctx context.Context, sessionID string) ([]model.RoundSummary, error) {
	query := `WITH numbered AS (
		SELECT round, target_x, target_y, correct,
			ROW_NUMBER() OVER (PARTITION BY round ORDER BY id) AS n
		FROM attempts
		WHERE session_id = ?
	)
	SELECT round, target_x, target_y, COUNT(*) AS attempts, SUM(correct) AS correct,
		COALESCE(MIN(CASE WHEN correct = 1 THEN n END), 0) AS first_correct
	FROM numbered
	GROUP BY round, target_x, target_y
	ORDER BY round ASC`

	rows, err := j.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.RoundSummary
	for rows.Next() {
		var r model.RoundSummary
		if err := rows.Scan(&r.Round, &r.Target.X, &r.Target.Y, &r.Attempts, &r.Correct, &r.FirstCorrect); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
