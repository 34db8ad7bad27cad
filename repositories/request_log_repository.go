package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aimethods/explorer/models"
)

// DefaultHistoryLimit bounds ListRecent when the caller passes no limit.
const DefaultHistoryLimit = 10

// RequestLogRepository handles request history persistence
type RequestLogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.LogEntry, error)
}

// sqliteRequestLogRepository implements RequestLogRepository. Every call
// checks a dedicated connection out of the pool and releases it on all exit
// paths; inserts are single-row autocommit.
type sqliteRequestLogRepository struct {
	db *sql.DB
}

// NewRequestLogRepository creates a new request log repository
func NewRequestLogRepository(db *sql.DB) RequestLogRepository {
	return &sqliteRequestLogRepository{db: db}
}

// Create appends a new log entry and fills in its assigned id. Entries are
// append-only; nothing updates or deletes rows.
func (r *sqliteRequestLogRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	if r.db == nil {
		return &StoreError{Op: "append", Err: errors.New("database unavailable")}
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return &StoreError{Op: "append", Err: err}
	}
	defer conn.Close()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	result, err := conn.ExecContext(ctx, `
		INSERT INTO requests (endpoint, input_text, result, timestamp)
		VALUES (?, ?, ?, ?)
	`,
		entry.Endpoint,
		entry.InputText,
		entry.Result,
		entry.Timestamp,
	)
	if err != nil {
		return &StoreError{Op: "append", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return &StoreError{Op: "append", Err: err}
	}

	entry.ID = id
	return nil
}

// ListRecent retrieves the most recent log entries, newest first. A
// non-positive limit falls back to DefaultHistoryLimit.
func (r *sqliteRequestLogRepository) ListRecent(ctx context.Context, limit int) ([]models.LogEntry, error) {
	if r.db == nil {
		return nil, &StoreError{Op: "read", Err: errors.New("database unavailable")}
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, &StoreError{Op: "read", Err: err}
	}
	defer conn.Close()

	// Ordering by id relies on ids being assigned in strictly increasing
	// insert order.
	rows, err := conn.QueryContext(ctx, `
		SELECT id, endpoint, input_text, result, timestamp
		FROM requests
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, &StoreError{Op: "read", Err: err}
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var entry models.LogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Endpoint,
			&entry.InputText,
			&entry.Result,
			&entry.Timestamp,
		); err != nil {
			return nil, &StoreError{Op: "read", Err: err}
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, &StoreError{Op: "read", Err: err}
	}

	return entries, nil
}
