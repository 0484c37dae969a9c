package model

import "time"

// HistoryRecord represents one generation-history row. Only a SHA-256
// fingerprint of the password is stored, never the password itself.
type HistoryRecord struct {
	ID          int64
	UserID      int64
	Fingerprint string
	Length      int
	Entropy     float64
	Score       int
	Strength    string
	CreatedAt   time.Time
}

// HistoryRecordResponse represents a generation-history row in API
// responses.
type HistoryRecordResponse struct {
	Fingerprint string    `json:"fingerprint"`
	Length      int       `json:"length"`
	Entropy     float64   `json:"entropy_bits"`
	Score       int       `json:"score"`
	Strength    string    `json:"strength"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryListResponse represents the full history listing for a user.
type HistoryListResponse struct {
	Count   int                     `json:"count"`
	Records []HistoryRecordResponse `json:"records"`
}
