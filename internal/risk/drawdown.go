package risk

// CalculateMaxDrawdown 수익률 경로의 최대 낙폭 (peak 대비, 양수)
// 누적 = Π(1 + r), MDD = max((peak - 누적) / peak)
func CalculateMaxDrawdown(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	// 누적 수익률 계산
	cumReturn := 1.0
	peak := 1.0
	maxDD := 0.0

	for _, ret := range returns {
		cumReturn *= (1 + ret)
		if cumReturn > peak {
			peak = cumReturn
		}
		drawdown := (peak - cumReturn) / peak
		if drawdown > maxDD {
			maxDD = drawdown
		}
	}

	return maxDD
}
