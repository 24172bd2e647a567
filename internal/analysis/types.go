package analysis

import (
	"time"

	"github.com/wonny/betahedge/internal/hedge"
	"github.com/wonny/betahedge/internal/risk"
)

// Input 페어 분석 입력
// 가격은 Prices가 있으면 그대로, 없으면 Data(원시 텍스트)를 파싱
// ⭐ 두 시계열은 같은 기간/주기로 미리 정렬되어 있어야 함 (날짜 정렬은 호출자 책임)
type Input struct {
	Asset1Name   string    `json:"asset1_name" validate:"max=32"`
	Asset2Name   string    `json:"asset2_name" validate:"max=32"`
	Asset1Data   string    `json:"asset1_data,omitempty"`
	Asset2Data   string    `json:"asset2_data,omitempty"`
	Asset1Prices []float64 `json:"asset1_prices,omitempty"`
	Asset2Prices []float64 `json:"asset2_prices,omitempty"`

	Capital         float64 `json:"capital" validate:"gt=0"`
	Leverage        float64 `json:"leverage" validate:"gt=0"`
	UseComputedBeta *bool   `json:"use_computed_beta,omitempty"`
	VaRConfidence   float64 `json:"var_confidence" validate:"gt=0,lt=1"`
}

// SizingInput Beta 계산 없이 사이징만 할 때의 입력
// Beta가 nil이면 Asset2Vol / Asset1Vol 사용
type SizingInput struct {
	Beta      *float64 `json:"beta,omitempty"`
	Asset1Vol float64  `json:"asset1_vol" validate:"gte=0"`
	Asset2Vol float64  `json:"asset2_vol" validate:"gte=0"`
	Capital   float64  `json:"capital" validate:"gt=0"`
	Leverage  float64  `json:"leverage" validate:"gt=0"`
}

// AssetSummary 자산별 요약
type AssetSummary struct {
	Name          string  `json:"name"`
	PriceCount    int     `json:"price_count"`
	AnnualizedVol float64 `json:"annualized_vol"` // %
	DailyVol      float64 `json:"daily_vol"`      // %
}

// Report 한 번의 분석 실행 결과
// ⭐ 부분 결과 없음: 검증 실패 시 Report 자체가 nil
type Report struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`

	Asset1 AssetSummary `json:"asset1"`
	Asset2 AssetSummary `json:"asset2"`

	Beta        float64 `json:"beta"`
	Correlation float64 `json:"correlation"`
	RSquared    float64 `json:"r_squared"`
	SampleSize  int     `json:"sample_size"`
	VolRatio    float64 `json:"vol_ratio"` // asset2 / asset1 연율 변동성

	SizingBeta float64           `json:"sizing_beta"`
	BetaSource hedge.BetaSource  `json:"beta_source"`
	Hedge      hedge.HedgeResult `json:"hedge"`
	PairRisk   *risk.PairRisk    `json:"pair_risk,omitempty"`
}
