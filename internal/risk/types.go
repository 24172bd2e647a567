package risk

// =============================================================================
// Annualization Convention
// =============================================================================

// TradingDaysPerYear 연율화 기준 일수
// ⭐ SSOT: 크립토 기준 365일 (주식 252일 아님)
const TradingDaysPerYear = 365

// VaRConvention VaR 부호 규약
// ⭐ SSOT: Loss를 양수로 표현 (VaR=0.05 → 5% 손실 가능)
const VaRConvention = "loss_positive"

// =============================================================================
// Volatility / Beta Types
// =============================================================================

// VolatilityStats 변동성 계산 결과
// - DailyVol: 일별 수익률 표준편차 (모집단, 소수 단위)
// - AnnualizedVol: DailyVol × √365 × 100 (퍼센트 단위)
type VolatilityStats struct {
	DailyVol      float64 `json:"daily_vol"`
	AnnualizedVol float64 `json:"annualized_vol"`
}

// BetaStats 두 수익률 시계열 간 회귀 통계
// ⭐ 방향성: Beta는 series2를 series1에 회귀한 기울기
// (series1이 1 움직일 때 series2가 움직이는 양)
type BetaStats struct {
	Beta        float64 `json:"beta"`
	Correlation float64 `json:"correlation"` // [-1, 1]
	RSquared    float64 `json:"r_squared"`   // [0, 1]
	SampleSize  int     `json:"sample_size"` // 정렬 후 사용된 수익률 개수 n
}

// =============================================================================
// VaR/CVaR Types
// =============================================================================

// VaRResult VaR 계산 결과
// ⭐ SSOT: VaR/CVaR는 손실을 양수로 표현
// - VaR=0.05 → 95% 신뢰수준에서 최대 5% 손실 가능
// - CVaR=0.07 → 5% tail에서 평균 7% 손실 예상
type VaRResult struct {
	Confidence float64 `json:"confidence"` // 신뢰수준 (예: 0.95, 0.99)
	VaR        float64 `json:"var"`        // Value at Risk (손실, 양수)
	CVaR       float64 `json:"cvar"`       // Conditional VaR (Expected Shortfall, 양수)
}

// PairRisk 헤지 페어의 방향별 꼬리 위험
type PairRisk struct {
	SampleSize       int       `json:"sample_size"`
	LongAsset1       VaRResult `json:"long_asset1"`  // asset1 롱 / asset2 숏
	ShortAsset1      VaRResult `json:"short_asset1"` // asset1 숏 / asset2 롱
	MeanReturn       float64   `json:"mean_return"`  // asset1 롱 기준 평균 수익률
	ReturnVolatility float64   `json:"return_volatility"`
	LongMaxDrawdown  float64   `json:"long_max_drawdown"`  // 양수, 소수 단위
	ShortMaxDrawdown float64   `json:"short_max_drawdown"` // 양수, 소수 단위
}
