package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/betahedge/internal/series"
)

func TestGenerator_Reproducible(t *testing.T) {
	a1, b1, err := NewGenerator(42).Pair(30)
	require.NoError(t, err)
	a2, b2, err := NewGenerator(42).Pair(30)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	a3, _, err := NewGenerator(7).Pair(30)
	require.NoError(t, err)
	assert.NotEqual(t, a1, a3)
}

func TestGenerator_PathBounds(t *testing.T) {
	prices, err := NewGenerator(1).Path(SOLWalk, 200)
	require.NoError(t, err)
	require.Len(t, prices, 200)
	assert.Equal(t, 140.0, prices[0])

	for i := 1; i < len(prices); i++ {
		step := prices[i]/prices[i-1] - 1
		assert.LessOrEqual(t, step, 0.02+1e-12)
		assert.GreaterOrEqual(t, step, -0.02-1e-12)
	}
}

func TestGenerator_PathErrors(t *testing.T) {
	g := NewGenerator(1)

	_, err := g.Path(ETHWalk, 1)
	assert.Error(t, err)

	_, err = g.Path(Walk{Start: 0, Amplitude: 0.03}, 10)
	assert.Error(t, err)

	_, err = g.Path(Walk{Start: 10, Amplitude: 2}, 10)
	assert.Error(t, err)
}

func TestFormat_RoundTripsThroughParser(t *testing.T) {
	text := Format([]float64{3500, 3512.3456, 140.005})
	assert.Equal(t, "3500.00\n3512.35\n140.01", text)

	parsed := series.Parse(text)
	assert.Equal(t, []float64{3500, 3512.35, 140.01}, parsed)
}
