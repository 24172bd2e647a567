package sample

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Walk 랜덤워크 가격 경로 설정
// p[i] = p[i-1] × (1 + (u - 0.5) × Amplitude), u ~ U[0,1)
type Walk struct {
	Start     float64 `json:"start"`
	Amplitude float64 `json:"amplitude"` // 0.03 → 일별 ±1.5%
}

var (
	// ETHWalk 데모용 asset1 (±1.5%/일)
	ETHWalk = Walk{Start: 3500, Amplitude: 0.03}
	// SOLWalk 데모용 asset2 (±2%/일)
	SOLWalk = Walk{Start: 140, Amplitude: 0.04}
)

// Generator 데모 가격 생성기
// ⚠️ 데모 전용: 통계 검증 fixture로 쓰지 말 것
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seed=0 이면 시간 기반 (재현 불가), 그 외 재현 가능
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Path period개의 가격 (첫 값 = Start)
func (g *Generator) Path(w Walk, period int) ([]float64, error) {
	if period < 2 {
		return nil, fmt.Errorf("period must be >= 2, got %d", period)
	}
	if w.Start <= 0 {
		return nil, fmt.Errorf("start price must be > 0, got %v", w.Start)
	}
	if w.Amplitude < 0 || w.Amplitude >= 2 {
		return nil, fmt.Errorf("amplitude must be in [0, 2), got %v", w.Amplitude)
	}

	prices := make([]float64, period)
	prices[0] = w.Start
	for i := 1; i < period; i++ {
		prices[i] = prices[i-1] * (1 + (g.rng.Float64()-0.5)*w.Amplitude)
	}
	return prices, nil
}

// Pair 데모 페어 (ETH-like, SOL-like)
func (g *Generator) Pair(period int) ([]float64, []float64, error) {
	asset1, err := g.Path(ETHWalk, period)
	if err != nil {
		return nil, nil, err
	}
	asset2, err := g.Path(SOLWalk, period)
	if err != nil {
		return nil, nil, err
	}
	return asset1, asset2, nil
}

// Format 한 줄에 가격 하나, 소수점 2자리 (Parse 입력 형식)
func Format(prices []float64) string {
	lines := make([]string, len(prices))
	for i, p := range prices {
		lines[i] = decimal.NewFromFloat(p).StringFixed(2)
	}
	return strings.Join(lines, "\n")
}
