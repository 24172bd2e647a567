package hedge

import (
	"fmt"
	"math"

	"github.com/wonny/betahedge/internal/risk"
)

// ErrDegenerateInput risk 패키지와 동일한 sentinel (errors.Is 하나로 검사)
var ErrDegenerateInput = risk.ErrDegenerateInput

// BetaSource 사이징에 사용한 Beta의 출처
type BetaSource string

const (
	SourceComputed BetaSource = "computed"  // ComputeBetaStats 결과
	SourceVolRatio BetaSource = "vol_ratio" // asset2Vol / asset1Vol (수동 입력)
)

// Side 포지션 방향
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

// Leg 한쪽 레그
type Leg struct {
	Asset     int     `json:"asset"` // 1 또는 2
	Side      Side    `json:"side"`
	Notional  float64 `json:"notional"`  // 레버리지 전
	Leveraged float64 `json:"leveraged"` // Notional × leverage
}

// Position 롱/숏 한 쌍
type Position struct {
	Long  Leg `json:"long"`
	Short Leg `json:"short"`
}

// HedgeResult 베타 중립 페어 사이징 결과
// ⭐ 두 방향(asset1 롱/asset2 숏, asset1 숏/asset2 롱)은 크기가 같고 부호만 다름
type HedgeResult struct {
	Beta           float64 `json:"beta"`
	Capital        float64 `json:"capital"`
	Leverage       float64 `json:"leverage"`
	CapitalPerSide float64 `json:"capital_per_side"`

	Asset1Size          float64 `json:"asset1_size"`
	Asset2Size          float64 `json:"asset2_size"`
	Asset1SizeLeveraged float64 `json:"asset1_size_leveraged"`
	Asset2SizeLeveraged float64 `json:"asset2_size_leveraged"`

	LongAsset1  Position `json:"long_asset1"`  // asset1 롱 / asset2 숏
	ShortAsset1 Position `json:"short_asset1"` // asset1 숏 / asset2 롱
}

// ComputeHedgeSizes Beta/자본/레버리지 → 레그별 노셔널
// - perSide = capital / 2
// - asset1 = perSide / (1 + beta)  (Beta 기준 자산)
// - asset2 = asset1 × beta
// - 레버리지는 단순 선형 배수 (마진/청산 모델 없음)
// beta == -1 이면 분모 0 → ErrDegenerateInput
func ComputeHedgeSizes(beta, capital, leverage float64) (HedgeResult, error) {
	inputs := []struct {
		name  string
		value float64
	}{{"beta", beta}, {"capital", capital}, {"leverage", leverage}}
	for _, in := range inputs {
		if math.IsNaN(in.value) || math.IsInf(in.value, 0) {
			return HedgeResult{}, fmt.Errorf("%w: %s is not finite", ErrDegenerateInput, in.name)
		}
	}
	if beta == -1 {
		return HedgeResult{}, fmt.Errorf("%w: beta of -1 makes the hedge ratio undefined", ErrDegenerateInput)
	}

	perSide := capital / 2
	asset1 := perSide / (1 + beta)
	asset2 := asset1 * beta

	result := HedgeResult{
		Beta:                beta,
		Capital:             capital,
		Leverage:            leverage,
		CapitalPerSide:      perSide,
		Asset1Size:          asset1,
		Asset2Size:          asset2,
		Asset1SizeLeveraged: asset1 * leverage,
		Asset2SizeLeveraged: asset2 * leverage,
	}

	asset1Leg := func(side Side) Leg {
		return Leg{Asset: 1, Side: side, Notional: asset1, Leveraged: result.Asset1SizeLeveraged}
	}
	asset2Leg := func(side Side) Leg {
		return Leg{Asset: 2, Side: side, Notional: asset2, Leveraged: result.Asset2SizeLeveraged}
	}

	result.LongAsset1 = Position{Long: asset1Leg(Long), Short: asset2Leg(Short)}
	result.ShortAsset1 = Position{Long: asset2Leg(Long), Short: asset1Leg(Short)}

	return result, nil
}

// ResolveBeta 사이징에 쓸 Beta 선택
// computed가 있으면 그대로, 없으면 연율 변동성 비율 (asset2Vol / asset1Vol)
// Beta 계산 없이도 사이징을 쓸 수 있게 하는 fallback
func ResolveBeta(computed *float64, asset1Vol, asset2Vol float64) (float64, BetaSource, error) {
	if computed != nil {
		return *computed, SourceComputed, nil
	}

	if asset1Vol == 0 {
		return 0, SourceVolRatio, fmt.Errorf("%w: asset1 volatility is zero", ErrDegenerateInput)
	}

	return asset2Vol / asset1Vol, SourceVolRatio, nil
}

// GrossNotional 두 레그 노셔널 합 (레버리지 전)
func (h HedgeResult) GrossNotional() float64 {
	return math.Abs(h.Asset1Size) + math.Abs(h.Asset2Size)
}

// Weights 총 노셔널 대비 레그 비중 (asset1, asset2)
// 노셔널 합이 0이면 (0, 0)
func (h HedgeResult) Weights() (float64, float64) {
	gross := h.GrossNotional()
	if gross == 0 {
		return 0, 0
	}
	return math.Abs(h.Asset1Size) / gross, math.Abs(h.Asset2Size) / gross
}
