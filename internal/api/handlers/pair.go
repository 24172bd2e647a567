package handlers

import (
	"net/http"
	"strconv"

	"github.com/wonny/betahedge/internal/analysis"
	"github.com/wonny/betahedge/internal/hedge"
	"github.com/wonny/betahedge/internal/sample"
	"github.com/wonny/betahedge/pkg/config"
	"github.com/wonny/betahedge/pkg/logger"
)

// PairHandler handles pair analysis API endpoints
// ⭐ SSOT: 페어 분석/사이징 API 핸들러는 이 구조체에서만
type PairHandler struct {
	service      *analysis.Service
	sampleConfig config.SampleConfig
	maxBodyBytes int64
	logger       *logger.Logger
}

// NewPairHandler creates a new pair handler
func NewPairHandler(
	service *analysis.Service,
	sampleConfig config.SampleConfig,
	maxBodyBytes int64,
	log *logger.Logger,
) *PairHandler {
	return &PairHandler{
		service:      service,
		sampleConfig: sampleConfig,
		maxBodyBytes: maxBodyBytes,
		logger:       log,
	}
}

// HedgeResponse 사이징 응답
type HedgeResponse struct {
	BetaSource hedge.BetaSource   `json:"beta_source"`
	Result     *hedge.HedgeResult `json:"result"`
}

// SampleResponse 데모 가격 응답
type SampleResponse struct {
	Period     int    `json:"period"`
	Seed       int64  `json:"seed,omitempty"`
	Asset1Data string `json:"asset1_data"`
	Asset2Data string `json:"asset2_data"`
}

// Analyze runs the full pair analysis
// POST /api/analyze
func (h *PairHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var in analysis.Input
	if err := decodeJSON(w, r, h.maxBodyBytes, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	report, err := h.service.Analyze(r.Context(), in)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.WithError(err).Error("Pair analysis failed")
		}
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// Hedge sizes a beta-neutral pair without running the beta estimator
// POST /api/hedge
func (h *PairHandler) Hedge(w http.ResponseWriter, r *http.Request) {
	var in analysis.SizingInput
	if err := decodeJSON(w, r, h.maxBodyBytes, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, source, err := h.service.Size(r.Context(), in)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respondJSON(w, http.StatusOK, HedgeResponse{BetaSource: source, Result: result})
}

// Sample returns demo random-walk price series
// GET /api/sample?period=30&seed=42
func (h *PairHandler) Sample(w http.ResponseWriter, r *http.Request) {
	period := h.sampleConfig.Period
	if v := r.URL.Query().Get("period"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 2 || p > 10000 {
			respondError(w, http.StatusBadRequest, "period must be an integer in [2, 10000]")
			return
		}
		period = p
	}

	seed := h.sampleConfig.Seed
	if v := r.URL.Query().Get("seed"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		seed = s
	}

	asset1, asset2, err := sample.NewGenerator(seed).Pair(period)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, SampleResponse{
		Period:     period,
		Seed:       seed,
		Asset1Data: sample.Format(asset1),
		Asset2Data: sample.Format(asset2),
	})
}
