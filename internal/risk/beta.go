package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ComputeBetaStats 두 수익률 시계열의 Beta / 상관계수 / R²
// ⭐ 정렬 규칙: n = min(len1, len2), 앞에서부터 n개만 사용 (날짜 정렬 아님)
// ⭐ 방향성: Beta = Cov(r1, r2) / Var(r1) → series2의 series1 대비 민감도
// 인자 순서를 바꾸면 경제적 의미가 달라짐
func ComputeBetaStats(returns1, returns2 []float64) (BetaStats, error) {
	n := len(returns1)
	if len(returns2) < n {
		n = len(returns2)
	}
	if n == 0 {
		return BetaStats{}, fmt.Errorf("%w: empty return series", ErrInsufficientData)
	}

	x := returns1[:n]
	y := returns2[:n]

	// Fail-closed: 상수 시계열은 분산 0
	if isConstant(x) {
		return BetaStats{}, fmt.Errorf("%w: series1 returns are constant (zero variance)", ErrDegenerateInput)
	}
	if isConstant(y) {
		return BetaStats{}, fmt.Errorf("%w: series2 returns are constant (zero variance)", ErrDegenerateInput)
	}

	mean1 := stat.Mean(x, nil)
	mean2 := stat.Mean(y, nil)

	var covariance, variance1, variance2 float64
	for i := 0; i < n; i++ {
		diff1 := x[i] - mean1
		diff2 := y[i] - mean2
		covariance += diff1 * diff2
		variance1 += diff1 * diff1
		variance2 += diff2 * diff2
	}
	covariance /= float64(n)
	variance1 /= float64(n)
	variance2 /= float64(n)

	if variance1 == 0 || variance2 == 0 {
		return BetaStats{}, fmt.Errorf("%w: zero variance", ErrDegenerateInput)
	}

	correlation := covariance / (math.Sqrt(variance1) * math.Sqrt(variance2))

	return BetaStats{
		Beta:        covariance / variance1,
		Correlation: correlation,
		RSquared:    correlation * correlation,
		SampleSize:  n,
	}, nil
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
