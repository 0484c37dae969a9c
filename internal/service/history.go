package service

import (
	"context"

	"github.com/securepassgen/securepassgen-go/internal/crypto"
	"github.com/securepassgen/securepassgen-go/internal/model"
	"github.com/securepassgen/securepassgen-go/internal/password"
	"github.com/securepassgen/securepassgen-go/internal/repository"
)

// HistoryService handles generation-history business logic. Records hold
// SHA-256 fingerprints and strength metadata; plaintext passwords never
// reach the repository.
type HistoryService struct {
	repo *repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repo *repository.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Record stores the fingerprint and metadata of a generated password.
func (s *HistoryService) Record(ctx context.Context, userID int64, pw *password.Password) error {
	rec := model.HistoryRecord{
		UserID:      userID,
		Fingerprint: crypto.Fingerprint(pw.String()),
		Length:      pw.Length,
		Entropy:     pw.Entropy,
		Score:       pw.Score,
		Strength:    pw.Strength.String(),
	}
	return s.repo.Insert(ctx, &rec)
}

// Contains reports whether the user has previously generated the given
// password, by fingerprint.
func (s *HistoryService) Contains(ctx context.Context, userID int64, pw string) (bool, error) {
	return s.repo.ContainsFingerprint(ctx, userID, crypto.Fingerprint(pw))
}

// List returns the user's history, newest first.
func (s *HistoryService) List(ctx context.Context, userID int64) (model.HistoryListResponse, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return model.HistoryListResponse{}, err
	}

	resp := model.HistoryListResponse{
		Count:   len(records),
		Records: make([]model.HistoryRecordResponse, len(records)),
	}
	for i, rec := range records {
		resp.Records[i] = model.HistoryRecordResponse{
			Fingerprint: rec.Fingerprint,
			Length:      rec.Length,
			Entropy:     rec.Entropy,
			Score:       rec.Score,
			Strength:    rec.Strength,
			CreatedAt:   rec.CreatedAt,
		}
	}
	return resp, nil
}

// Clear purges the user's history and returns the number of records
// removed.
func (s *HistoryService) Clear(ctx context.Context, userID int64) (int64, error) {
	return s.repo.DeleteByUser(ctx, userID)
}
