package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/securepassgen/securepassgen-go/internal/middleware"
	"github.com/securepassgen/securepassgen-go/internal/model"
	"github.com/securepassgen/securepassgen-go/internal/password"
	"github.com/securepassgen/securepassgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and
// strength assessment.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	resp, err := h.service.Generate(r.Context(), userID, req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateBulk handles POST /api/v1/generate/bulk requests.
func (h *GeneratorHandler) HandleGenerateBulk(w http.ResponseWriter, r *http.Request) {
	var req model.BulkGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	resp, err := h.service.GenerateBulk(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBulkCount) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGeneratePattern handles POST /api/v1/generate/pattern requests.
func (h *GeneratorHandler) HandleGeneratePattern(w http.ResponseWriter, r *http.Request) {
	var req model.PatternGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	resp, err := h.service.GenerateFromPattern(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrPatternRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAssess handles POST /api/v1/assess requests.
func (h *GeneratorHandler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	var req model.AssessRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	resp, err := h.service.Assess(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeBody reads a JSON request body capped at 1MB. It writes the
// error response itself and reports whether decoding succeeded. A
// missing body leaves the destination zero-valued.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeGenerateError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	var perr *password.PatternError
	if errors.As(err, &perr) {
		return true
	}
	return errors.Is(err, password.ErrLengthTooShort) ||
		errors.Is(err, password.ErrLengthTooLong) ||
		errors.Is(err, password.ErrNoCharacterTypes) ||
		errors.Is(err, password.ErrLengthInsufficient) ||
		errors.Is(err, password.ErrInvalidMinimum) ||
		errors.Is(err, password.ErrMinDigitsImpossible) ||
		errors.Is(err, password.ErrMinSpecialImpossible) ||
		errors.Is(err, password.ErrMinimumsExceedLength) ||
		errors.Is(err, password.ErrEmptyPattern)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
