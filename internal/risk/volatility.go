package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ComputeVolatility 수익률 시계열의 일별/연율 변동성
// 모집단 분산 (N으로 나눔, N-1 아님)
func ComputeVolatility(returns []float64) (VolatilityStats, error) {
	if len(returns) == 0 {
		return VolatilityStats{}, fmt.Errorf("%w: empty return series", ErrInsufficientData)
	}

	_, variance := stat.PopMeanVariance(returns, nil)
	if variance < 0 {
		// 보정 2-pass 알고리즘의 반올림 오차
		variance = 0
	}
	dailyVol := math.Sqrt(variance)

	return VolatilityStats{
		DailyVol:      dailyVol,
		AnnualizedVol: Annualize(dailyVol),
	}, nil
}

// Annualize 일별 변동성 → 연율 변동성 (퍼센트)
func Annualize(dailyVol float64) float64 {
	return dailyVol * math.Sqrt(TradingDaysPerYear) * 100
}
