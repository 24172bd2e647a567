package hedge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/betahedge/internal/risk"
)

func TestComputeHedgeSizes(t *testing.T) {
	tests := []struct {
		name          string
		beta          float64
		capital       float64
		leverage      float64
		wantAsset1    float64
		wantAsset2    float64
		wantAsset1Lev float64
		wantAsset2Lev float64
	}{
		{
			name:          "beta 1 splits equally",
			beta:          1,
			capital:       10000,
			leverage:      1,
			wantAsset1:    2500,
			wantAsset2:    2500,
			wantAsset1Lev: 2500,
			wantAsset2Lev: 2500,
		},
		{
			name:          "beta 2 with 2x leverage",
			beta:          2,
			capital:       10000,
			leverage:      2,
			wantAsset1:    5000.0 / 3,
			wantAsset2:    10000.0 / 3,
			wantAsset1Lev: 10000.0 / 3,
			wantAsset2Lev: 20000.0 / 3,
		},
		{
			name:          "vol ratio beta",
			beta:          90.0 / 70.0,
			capital:       10000,
			leverage:      1,
			wantAsset1:    5000 / (1 + 90.0/70.0),
			wantAsset2:    5000 / (1 + 90.0/70.0) * 90.0 / 70.0,
			wantAsset1Lev: 5000 / (1 + 90.0/70.0),
			wantAsset2Lev: 5000 / (1 + 90.0/70.0) * 90.0 / 70.0,
		},
		{
			name:     "zero beta puts everything in asset1",
			beta:     0,
			capital:  10000,
			leverage: 3,

			wantAsset1:    5000,
			wantAsset2:    0,
			wantAsset1Lev: 15000,
			wantAsset2Lev: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeHedgeSizes(tt.beta, tt.capital, tt.leverage)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantAsset1, result.Asset1Size, 1e-9)
			assert.InDelta(t, tt.wantAsset2, result.Asset2Size, 1e-9)
			assert.InDelta(t, tt.wantAsset1Lev, result.Asset1SizeLeveraged, 1e-9)
			assert.InDelta(t, tt.wantAsset2Lev, result.Asset2SizeLeveraged, 1e-9)
			assert.Equal(t, tt.capital/2, result.CapitalPerSide)
		})
	}
}

func TestComputeHedgeSizes_Directions(t *testing.T) {
	result, err := ComputeHedgeSizes(2, 10000, 2)
	require.NoError(t, err)

	// asset1 롱 / asset2 숏
	assert.Equal(t, 1, result.LongAsset1.Long.Asset)
	assert.Equal(t, Long, result.LongAsset1.Long.Side)
	assert.Equal(t, 2, result.LongAsset1.Short.Asset)
	assert.Equal(t, Short, result.LongAsset1.Short.Side)

	// asset1 숏 / asset2 롱: 크기는 동일
	assert.Equal(t, 2, result.ShortAsset1.Long.Asset)
	assert.Equal(t, 1, result.ShortAsset1.Short.Asset)
	assert.Equal(t, result.LongAsset1.Long.Notional, result.ShortAsset1.Short.Notional)
	assert.Equal(t, result.LongAsset1.Short.Notional, result.ShortAsset1.Long.Notional)
	assert.Equal(t, result.LongAsset1.Short.Leveraged, result.ShortAsset1.Long.Leveraged)
	assert.InDelta(t, 20000.0/3, result.ShortAsset1.Long.Leveraged, 1e-9)
}

func TestComputeHedgeSizes_Degenerate(t *testing.T) {
	tests := []struct {
		name     string
		beta     float64
		capital  float64
		leverage float64
	}{
		{"beta minus one", -1, 10000, 1},
		{"NaN beta", math.NaN(), 10000, 1},
		{"infinite capital", 1, math.Inf(1), 1},
		{"infinite leverage", 1, 10000, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeHedgeSizes(tt.beta, tt.capital, tt.leverage)
			assert.ErrorIs(t, err, ErrDegenerateInput)
			assert.ErrorIs(t, err, risk.ErrDegenerateInput)
		})
	}
}

func TestComputeHedgeSizes_Idempotent(t *testing.T) {
	first, err := ComputeHedgeSizes(1.37, 25000, 3)
	require.NoError(t, err)
	second, err := ComputeHedgeSizes(1.37, 25000, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveBeta(t *testing.T) {
	computed := 1.42

	beta, source, err := ResolveBeta(&computed, 70, 90)
	require.NoError(t, err)
	assert.Equal(t, 1.42, beta)
	assert.Equal(t, SourceComputed, source)

	beta, source, err = ResolveBeta(nil, 70, 90)
	require.NoError(t, err)
	assert.InDelta(t, 90.0/70.0, beta, 1e-12)
	assert.Equal(t, SourceVolRatio, source)

	_, _, err = ResolveBeta(nil, 0, 90)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestHedgeResult_Weights(t *testing.T) {
	result, err := ComputeHedgeSizes(3, 10000, 1)
	require.NoError(t, err)

	w1, w2 := result.Weights()
	assert.InDelta(t, 0.25, w1, 1e-12)
	assert.InDelta(t, 0.75, w2, 1e-12)
	assert.InDelta(t, 5000, result.GrossNotional(), 1e-9)

	empty := HedgeResult{}
	w1, w2 = empty.Weights()
	assert.Zero(t, w1)
	assert.Zero(t, w2)
}
