package repository

import (
	"context"
	"database/sql"

	"github.com/securepassgen/securepassgen-go/internal/model"
)

// HistoryRepository handles generation-history persistence. The table is
// append-only: records are inserted at generation time and only removed
// by an explicit purge.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert appends a history record and sets the generated ID.
func (r *HistoryRepository) Insert(ctx context.Context, rec *model.HistoryRecord) error {
	query := `INSERT INTO history (user_id, fingerprint, length, entropy, score, strength)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		rec.UserID, rec.Fingerprint, rec.Length, rec.Entropy, rec.Score, rec.Strength,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	rec.ID = id
	return nil
}

// ContainsFingerprint reports whether a user already has a record with
// the given fingerprint.
func (r *HistoryRepository) ContainsFingerprint(ctx context.Context, userID int64, fingerprint string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM history WHERE user_id = ? AND fingerprint = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, fingerprint).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByUser retrieves all history records for a user, newest first.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID int64) ([]model.HistoryRecord, error) {
	query := `SELECT id, user_id, fingerprint, length, entropy, score, strength, created_at
		FROM history WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.HistoryRecord
	for rows.Next() {
		var rec model.HistoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Fingerprint, &rec.Length,
			&rec.Entropy, &rec.Score, &rec.Strength, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteByUser purges a user's history and returns the number of rows
// removed.
func (r *HistoryRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
