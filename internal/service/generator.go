package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/securepassgen/securepassgen-go/internal/model"
	"github.com/securepassgen/securepassgen-go/internal/password"
)

// MaxBulkCount bounds a single bulk generation request.
const MaxBulkCount = 100

var (
	ErrInvalidBulkCount = errors.New("count must be between 1 and 100")
	ErrPatternRequired  = errors.New("pattern is required")
)

// GeneratorService handles password generation and assessment business
// logic. The history service is optional; without it duplicate detection
// is disabled and nothing is recorded.
type GeneratorService struct {
	gen      *password.Generator
	assessor *password.Assessor
	history  *HistoryService
}

// NewGeneratorService creates a GeneratorService drawing from src.
func NewGeneratorService(src password.Source, assessor *password.Assessor, history *HistoryService) *GeneratorService {
	if assessor == nil {
		assessor = password.NewAssessor()
	}
	return &GeneratorService{
		gen:      password.NewGenerator(src),
		assessor: assessor,
		history:  history,
	}
}

// Generate produces a single password. userID is zero for anonymous
// callers; authenticated generations are recorded in the history.
func (s *GeneratorService) Generate(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	pw, err := s.gen.Generate(optionsFromRequest(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}
	defer pw.Wipe()

	s.record(ctx, userID, pw)

	return passwordToResponse(pw), nil
}

// GenerateBulk produces Count independent passwords from one option set.
// Generation aborts on the first failure; passwords already produced are
// wiped and never returned.
func (s *GeneratorService) GenerateBulk(ctx context.Context, userID int64, req model.BulkGenerateRequest) (model.BulkGenerateResponse, error) {
	if req.Count < 1 || req.Count > MaxBulkCount {
		return model.BulkGenerateResponse{}, ErrInvalidBulkCount
	}

	opts := optionsFromRequest(req.Options)

	passwords := make([]*password.Password, 0, req.Count)
	defer func() {
		for _, pw := range passwords {
			pw.Wipe()
		}
	}()

	for i := 0; i < req.Count; i++ {
		pw, err := s.gen.Generate(opts)
		if err != nil {
			return model.BulkGenerateResponse{}, err
		}
		passwords = append(passwords, pw)
	}

	resp := model.BulkGenerateResponse{
		Count:     len(passwords),
		Passwords: make([]model.GenerateResponse, len(passwords)),
	}
	for i, pw := range passwords {
		resp.Passwords[i] = passwordToResponse(pw)
		s.record(ctx, userID, pw)
	}

	return resp, nil
}

// GenerateFromPattern produces a password following the given class
// pattern ('l', 'U', 'n', 's').
func (s *GeneratorService) GenerateFromPattern(ctx context.Context, userID int64, req model.PatternGenerateRequest) (model.GenerateResponse, error) {
	if req.Pattern == "" {
		return model.GenerateResponse{}, ErrPatternRequired
	}

	pw, err := s.gen.GenerateFromPattern(req.Pattern)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	defer pw.Wipe()

	s.record(ctx, userID, pw)

	return passwordToResponse(pw), nil
}

// Assess evaluates an externally supplied password. With a history
// attached and an authenticated caller, the duplicate flag reflects the
// caller's generation history.
func (s *GeneratorService) Assess(ctx context.Context, userID int64, req model.AssessRequest) (model.AssessResponse, error) {
	if req.Password == "" {
		return model.AssessResponse{}, ErrPasswordRequired
	}

	var history password.History
	if s.history != nil && userID != 0 {
		history = &userHistory{ctx: ctx, userID: userID, svc: s.history}
	}

	as := s.assessor.AssessWithHistory(req.Password, history)

	return model.AssessResponse{
		Score:             as.Score,
		Strength:          as.Strength.String(),
		Entropy:           as.Entropy,
		CrackTimeSeconds:  as.CrackTimeSeconds,
		CrackTime:         password.FormatCrackTime(as.CrackTimeSeconds),
		HasWeakPattern:    as.HasWeakPattern,
		HasDictionaryWord: as.HasDictionaryWord,
		IsDuplicate:       as.IsDuplicate,
	}, nil
}

func (s *GeneratorService) record(ctx context.Context, userID int64, pw *password.Password) {
	if s.history == nil || userID == 0 {
		return
	}
	if err := s.history.Record(ctx, userID, pw); err != nil {
		slog.Warn("recording generation history failed", "error", err)
	}
}

// userHistory adapts the repository-backed history to the assessor's
// History collaborator for one call.
type userHistory struct {
	ctx    context.Context
	userID int64
	svc    *HistoryService
}

func (h *userHistory) Contains(pw string) bool {
	found, err := h.svc.Contains(h.ctx, h.userID, pw)
	if err != nil {
		slog.Warn("history lookup failed", "error", err)
		return false
	}
	return found
}

// optionsFromRequest maps a request onto generator options, filling
// absent fields from the defaults.
func optionsFromRequest(req model.GenerateRequest) password.Options {
	defaults := password.DefaultOptions()

	opts := password.Options{
		Length:          req.Length,
		Lowercase:       boolOrDefault(req.Lowercase, defaults.Lowercase),
		Uppercase:       boolOrDefault(req.Uppercase, defaults.Uppercase),
		Digits:          boolOrDefault(req.Digits, defaults.Digits),
		Special:         boolOrDefault(req.Special, defaults.Special),
		AvoidAmbiguous:  req.AvoidAmbiguous,
		RequireAllTypes: boolOrDefault(req.RequireAllTypes, defaults.RequireAllTypes),
	}
	if opts.Length == 0 {
		opts.Length = defaults.Length
	}

	// Minimum counts fall back to the stock value only when the matching
	// class is enabled, so disabling a class never requires an explicit
	// zero minimum alongside it.
	opts.MinDigits = intOrDefault(req.MinDigits, defaultMin(opts.Digits, defaults.MinDigits))
	opts.MinSpecial = intOrDefault(req.MinSpecial, defaultMin(opts.Special, defaults.MinSpecial))

	return opts
}

func passwordToResponse(pw *password.Password) model.GenerateResponse {
	return model.GenerateResponse{
		Password: pw.String(),
		Length:   pw.Length,
		Entropy:  pw.Entropy,
		Score:    pw.Score,
		Strength: pw.Strength.String(),
	}
}

func defaultMin(classEnabled bool, stock int) int {
	if classEnabled {
		return stock
	}
	return 0
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
