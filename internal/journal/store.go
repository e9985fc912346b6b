package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one document outcome.
type Record struct {
	ID          string
	RunID       string
	RecordedAt  time.Time
	Locale      string
	Slug        string
	RelPath     string
	Shape       string
	Status      string
	AssignedIDs []string
	InputHash   string
	OutputHash  string
	Error       string
}

// Store provides access to journal records.
type Store struct {
	db *DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *DB) *Store {
	return &Store{db: database}
}

// Record inserts rec. If rec.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now()
	}
	if rec.AssignedIDs == nil {
		rec.AssignedIDs = []string{}
	}

	assigned, err := json.Marshal(rec.AssignedIDs)
	if err != nil {
		return fmt.Errorf("marshalling assigned ids: %w", err)
	}

	var errText sql.NullString
	if rec.Error != "" {
		errText = sql.NullString{String: rec.Error, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO document_runs (
			id, run_id, recorded_at, locale, slug, rel_path, shape,
			status, assigned_ids, input_hash, output_hash, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.RunID,
		rec.RecordedAt.UTC().Format(time.DateTime),
		rec.Locale,
		rec.Slug,
		rec.RelPath,
		rec.Shape,
		rec.Status,
		string(assigned),
		rec.InputHash,
		rec.OutputHash,
		errText,
	)
	if err != nil {
		return fmt.Errorf("inserting journal record: %w", err)
	}
	return nil
}

// QueryFilter controls which records Query returns.
type QueryFilter struct {
	RunID   string
	RelPath string
	Status  string
	Limit   int
}

// Query returns matching records, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Record, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.RunID != "" {
		clauses = append(clauses, "run_id = ?")
		args = append(args, filter.RunID)
	}
	if filter.RelPath != "" {
		clauses = append(clauses, "rel_path = ?")
		args = append(args, filter.RelPath)
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}

	query := "SELECT id, run_id, recorded_at, locale, slug, rel_path, shape, status, assigned_ids, input_hash, output_hash, error FROM document_runs"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY seq DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Recent returns the last limit records across all runs.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	return s.Query(ctx, QueryFilter{Limit: limit})
}

func scanRecord(rows *sql.Rows) (*Record, error) {
	var (
		rec          Record
		ts           string
		assignedJSON string
		errText      sql.NullString
	)

	err := rows.Scan(
		&rec.ID, &rec.RunID, &ts, &rec.Locale, &rec.Slug, &rec.RelPath,
		&rec.Shape, &rec.Status, &assignedJSON, &rec.InputHash, &rec.OutputHash, &errText,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning journal record: %w", err)
	}

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		rec.RecordedAt = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		rec.RecordedAt = t
	}
	if errText.Valid {
		rec.Error = errText.String
	}
	if err := json.Unmarshal([]byte(assignedJSON), &rec.AssignedIDs); err != nil {
		rec.AssignedIDs = nil
	}

	return &rec, nil
}
