package service

import (
	"testing"

	"github.com/securepassgen/securepassgen-go/internal/repository"
)

func TestNewHistoryService(t *testing.T) {
	svc := NewHistoryService(repository.NewHistoryRepository(nil))
	if svc == nil {
		t.Fatal("expected non-nil HistoryService")
	}
	if svc.repo == nil {
		t.Fatal("expected repository to be set")
	}
}
