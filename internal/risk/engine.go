package risk

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// RiskEngine - 순수 계산기
// =============================================================================

// Engine 페어 리스크 엔진 (순수 계산기)
// ⭐ SSOT: 입력 검증/로깅/포지션 정책은 상위 레이어(analysis)에서 조립
// internal/risk는 순수 계산만 담당 (상태 없음, I/O 없음, 로깅 없음)
type Engine struct{}

// NewEngine 새 리스크 엔진 생성
func NewEngine() *Engine {
	return &Engine{}
}

var (
	// ErrInsufficientData 계산에 필요한 최소 데이터 부족
	ErrInsufficientData = errors.New("insufficient data")
	// ErrDegenerateInput 분모가 0이 되는 입력 (가격 0, 분산 0, beta -1)
	ErrDegenerateInput = errors.New("degenerate input")
)

// Returns 가격 → 수익률
func (e *Engine) Returns(prices []float64) ([]float64, error) {
	return ComputeReturns(prices)
}

// Volatility 수익률 → 일별/연율 변동성
func (e *Engine) Volatility(returns []float64) (VolatilityStats, error) {
	return ComputeVolatility(returns)
}

// Beta series2의 series1 대비 Beta/상관/R²
func (e *Engine) Beta(returns1, returns2 []float64) (BetaStats, error) {
	return ComputeBetaStats(returns1, returns2)
}

// VaR Historical VaR/CVaR
func (e *Engine) VaR(returns []float64, confidence float64) VaRResult {
	return CalculateVaR(returns, confidence)
}

// =============================================================================
// Pair Risk (순수 계산)
// =============================================================================

// PairRisk 베타 중립 페어의 방향별 VaR + 최대 낙폭
// weight1, weight2: 총 노셔널 대비 각 레그 비중 (asset1 레그, asset2 레그)
func (e *Engine) PairRisk(returns1, returns2 []float64, weight1, weight2, confidence float64) (*PairRisk, error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("%w: confidence must be between 0 and 1, got %v", ErrDegenerateInput, confidence)
	}

	longReturns := PairReturns(returns1, returns2, weight1, weight2)
	if len(longReturns) == 0 {
		return nil, fmt.Errorf("%w: empty pair return series", ErrInsufficientData)
	}

	shortReturns := make([]float64, len(longReturns))
	for i, r := range longReturns {
		shortReturns[i] = -r
	}

	vol, err := ComputeVolatility(longReturns)
	if err != nil {
		return nil, err
	}

	return &PairRisk{
		SampleSize:       len(longReturns),
		LongAsset1:       CalculateVaR(longReturns, confidence),
		ShortAsset1:      CalculateVaR(shortReturns, confidence),
		MeanReturn:       stat.Mean(longReturns, nil),
		ReturnVolatility: vol.DailyVol,
		LongMaxDrawdown:  CalculateMaxDrawdown(longReturns),
		ShortMaxDrawdown: CalculateMaxDrawdown(shortReturns),
	}, nil
}

// PairReturns asset1 롱 / asset2 숏 페어의 기간별 수익률
// r = weight1*r1 - weight2*r2, 짧은 쪽 길이에 맞춤 (앞에서부터 정렬)
func PairReturns(returns1, returns2 []float64, weight1, weight2 float64) []float64 {
	n := len(returns1)
	if len(returns2) < n {
		n = len(returns2)
	}

	pair := make([]float64, n)
	for i := 0; i < n; i++ {
		pair[i] = weight1*returns1[i] - weight2*returns2[i]
	}
	return pair
}
