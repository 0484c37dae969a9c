package service

import (
	"context"
	"errors"
	"testing"

	"github.com/securepassgen/securepassgen-go/internal/model"
	"github.com/securepassgen/securepassgen-go/internal/password"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func newTestService(t *testing.T) *GeneratorService {
	t.Helper()
	src, err := password.NewCryptoSource()
	if err != nil {
		t.Fatalf("crypto source unavailable: %v", err)
	}
	return NewGeneratorService(src, nil, nil)
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestService(t)
	resp, err := svc.Generate(context.Background(), 0, model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Entropy <= 0 {
		t.Errorf("expected positive entropy, got %f", resp.Entropy)
	}
	if resp.Strength == "" {
		t.Error("expected a strength label")
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestService(t)
	resp, err := svc.Generate(context.Background(), 0, model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Digits:    boolPtr(false),
		Special:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_DisabledClassDropsMinimum(t *testing.T) {
	// Disabling digits must not trip the stock minimum-digit default.
	svc := newTestService(t)
	resp, err := svc.Generate(context.Background(), 0, model.GenerateRequest{
		Digits: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if c >= '0' && c <= '9' {
			t.Errorf("unexpected digit %q with digits disabled", c)
		}
	}
}

func TestGenerate_MinimumCounts(t *testing.T) {
	svc := newTestService(t)
	resp, err := svc.Generate(context.Background(), 0, model.GenerateRequest{
		Length:     12,
		MinDigits:  intPtr(4),
		MinSpecial: intPtr(3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var digits, special int
	for _, c := range resp.Password {
		switch {
		case c >= '0' && c <= '9':
			digits++
		default:
			for _, s := range password.SpecialChars {
				if c == s {
					special++
					break
				}
			}
		}
	}
	if digits < 4 {
		t.Errorf("expected at least 4 digits, got %d", digits)
	}
	if special < 3 {
		t.Errorf("expected at least 3 special characters, got %d", special)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Generate(context.Background(), 0, model.GenerateRequest{Length: 5})
	if !errors.Is(err, password.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Generate(context.Background(), 0, model.GenerateRequest{Length: 200})
	if !errors.Is(err, password.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Generate(context.Background(), 0, model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Digits:    boolPtr(false),
		Special:   boolPtr(false),
	})
	if !errors.Is(err, password.ErrNoCharacterTypes) {
		t.Fatalf("expected ErrNoCharacterTypes, got %v", err)
	}
}

func TestGenerateBulk(t *testing.T) {
	svc := newTestService(t)
	resp, err := svc.GenerateBulk(context.Background(), 0, model.BulkGenerateRequest{
		Count:   5,
		Options: model.GenerateRequest{Length: 12},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 5 {
		t.Errorf("expected count 5, got %d", resp.Count)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(resp.Passwords))
	}
	seen := make(map[string]bool)
	for _, pw := range resp.Passwords {
		if pw.Length != 12 {
			t.Errorf("expected length 12, got %d", pw.Length)
		}
		if seen[pw.Password] {
			t.Errorf("duplicate password in bulk batch: %q", pw.Password)
		}
		seen[pw.Password] = true
	}
}

func TestGenerateBulk_CountBounds(t *testing.T) {
	svc := newTestService(t)
	for _, count := range []int{0, -1, MaxBulkCount + 1} {
		_, err := svc.GenerateBulk(context.Background(), 0, model.BulkGenerateRequest{Count: count})
		if !errors.Is(err, ErrInvalidBulkCount) {
			t.Errorf("count %d: expected ErrInvalidBulkCount, got %v", count, err)
		}
	}
}

func TestGenerateBulk_InvalidOptions(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GenerateBulk(context.Background(), 0, model.BulkGenerateRequest{
		Count:   3,
		Options: model.GenerateRequest{Length: 5},
	})
	if !errors.Is(err, password.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerateFromPattern(t *testing.T) {
	svc := newTestService(t)
	resp, err := svc.GenerateFromPattern(context.Background(), 0, model.PatternGenerateRequest{Pattern: "llUUnnss"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 8 {
		t.Errorf("expected length 8, got %d", resp.Length)
	}
}

func TestGenerateFromPattern_Empty(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GenerateFromPattern(context.Background(), 0, model.PatternGenerateRequest{})
	if !errors.Is(err, ErrPatternRequired) {
		t.Fatalf("expected ErrPatternRequired, got %v", err)
	}
}

func TestGenerateFromPattern_InvalidCode(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GenerateFromPattern(context.Background(), 0, model.PatternGenerateRequest{Pattern: "llxll"})

	var perr *password.PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PatternError, got %v", err)
	}
	if perr.Code != 'x' || perr.Position != 2 {
		t.Errorf("expected code 'x' at position 2, got %q at %d", perr.Code, perr.Position)
	}
}

func TestAssess(t *testing.T) {
	svc := newTestService(t)
	resp, err := svc.Assess(context.Background(), 0, model.AssessRequest{Password: "password123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.HasWeakPattern {
		t.Error("expected weak pattern flag for password123")
	}
	if !resp.HasDictionaryWord {
		t.Error("expected dictionary flag for password123")
	}
	if resp.Strength != "Weak" {
		t.Errorf("expected strength Weak, got %q", resp.Strength)
	}
	if resp.IsDuplicate {
		t.Error("duplicate flag must stay false without a history")
	}
	if resp.CrackTime == "" {
		t.Error("expected a formatted crack time")
	}
}

func TestAssess_EmptyPassword(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Assess(context.Background(), 0, model.AssessRequest{})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}
