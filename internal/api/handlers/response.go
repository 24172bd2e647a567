package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wonny/betahedge/internal/analysis"
	"github.com/wonny/betahedge/internal/risk"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// statusFor 에러 종류 → HTTP 상태
// - ValidationError: 400 (입력 거부)
// - 수치 퇴화 (분산 0, beta -1, 가격 0): 422
func statusFor(err error) int {
	var ve analysis.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, risk.ErrDegenerateInput), errors.Is(err, risk.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondFailure ValidationError면 field 포함
func respondFailure(w http.ResponseWriter, err error) {
	status := statusFor(err)

	var ve analysis.ValidationError
	if errors.As(err, &ve) {
		respondJSON(w, status, map[string]string{
			"error": ve.Message,
			"field": ve.Field,
		})
		return
	}

	if status == http.StatusInternalServerError {
		respondError(w, status, "internal server error")
		return
	}
	respondError(w, status, err.Error())
}

// decodeJSON 본문 크기 제한 + 알 수 없는 필드 거부
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
