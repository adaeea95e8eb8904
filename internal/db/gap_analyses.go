package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/gap-analyzer/internal/schemas"
	"github.com/jonathan/gap-analyzer/internal/types"
)

// ErrAnalysisNotFound indicates the requested analysis does not exist.
var ErrAnalysisNotFound = errors.New("gap analysis not found")

// AnalysisRecord is a stored gap-analysis result.
type AnalysisRecord struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Analysis   *types.GapAnalysis `json:"analysis"`
	AnalyzedAt time.Time          `json:"analyzed_at"`
}

// SaveAnalysis persists a gap-analysis result for a user and returns the
// new record ID. Called as a background task from the request handler, so
// it never blocks the HTTP response.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, analysis *types.GapAnalysis) (uuid.UUID, error) {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateGapAnalysis(payload); err != nil {
		return uuid.Nil, fmt.Errorf("refusing to persist malformed analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO gap_analyses (user_id, payload)
		 VALUES ($1, $2)
		 RETURNING id`,
		userID, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var (
		record  AnalysisRecord
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, payload, analyzed_at FROM gap_analyses WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.UserID, &payload, &record.AnalyzedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAnalysisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}

	if err := json.Unmarshal(payload, &record.Analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	return &record, nil
}

// ListAnalyses returns a user's stored analyses, most recent first.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, payload, analyzed_at
		 FROM gap_analyses
		 WHERE user_id = $1
		 ORDER BY analyzed_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var (
			record  AnalysisRecord
			payload []byte
		)
		if err := rows.Scan(&record.ID, &record.UserID, &payload, &record.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		if err := json.Unmarshal(payload, &record.Analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}

	return records, nil
}

// DeleteAnalysis removes a stored analysis. Deleting a missing record
// returns ErrAnalysisNotFound.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM gap_analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}
