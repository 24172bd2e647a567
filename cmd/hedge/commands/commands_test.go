package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/betahedge/internal/analysis"
	"github.com/wonny/betahedge/internal/hedge"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// beta 2 페어: sol 수익률 = eth 수익률 × 2
func writePair(t *testing.T) (string, string) {
	dir := t.TempDir()
	eth := writeFile(t, dir, "eth.txt", "100\n110\n99\n105\n")
	sol := writeFile(t, dir, "sol.csv", "2024-01-01,50\n2024-01-02,60\n2024-01-03,48\n2024-01-04,53.81818181818182\n")
	return eth, sol
}

func TestAnalyze_JSON(t *testing.T) {
	eth, sol := writePair(t)

	out, err := execute(t, "analyze", "--asset1", eth, "--asset2", sol, "--capital", "10000", "--json")
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "eth", report.Asset1.Name)
	assert.Equal(t, "sol", report.Asset2.Name)
	assert.Equal(t, 3, report.SampleSize)
	assert.InDelta(t, 2.0, report.Beta, 1e-6)
	assert.Equal(t, hedge.SourceComputed, report.BetaSource)
	assert.InDelta(t, 5000.0/3, report.Hedge.Asset1Size, 1e-3)
}

func TestAnalyze_Text(t *testing.T) {
	eth, sol := writePair(t)

	out, err := execute(t, "analyze", "--asset1", eth, "--asset2", sol, "--name1", "ETH", "--name2", "SOL")
	require.NoError(t, err)

	assert.Contains(t, out, "Pair Analysis: ETH / SOL")
	assert.Contains(t, out, "2.0000")
	assert.Contains(t, out, "Long ETH / Short SOL")
	assert.Contains(t, out, "$1,666.67")
	assert.Contains(t, out, "$3,333.33")
}

func TestAnalyze_VolRatio(t *testing.T) {
	eth, sol := writePair(t)

	out, err := execute(t, "analyze", "--asset1", eth, "--asset2", sol, "--use-beta=false", "--json")
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, hedge.SourceVolRatio, report.BetaSource)
	assert.Equal(t, report.VolRatio, report.SizingBeta)
}

func TestAnalyze_Scenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "eth.txt", "100\n110\n99\n105\n")
	writeFile(t, dir, "sol.txt", "50\n60\n48\n53.81818181818182\n")
	path := writeFile(t, dir, "pair.yaml", `asset1:
  name: ETH
  file: eth.txt
asset2:
  name: SOL
  file: sol.txt
capital: 30000
leverage: 2
`)

	out, err := execute(t, "analyze", "--scenario", path, "--leverage", "3", "--json")
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "ETH", report.Asset1.Name)
	assert.Equal(t, 30000.0, report.Hedge.Capital)
	// 플래그가 시나리오 값보다 우선
	assert.Equal(t, 3.0, report.Hedge.Leverage)
}

func TestAnalyze_Errors(t *testing.T) {
	eth, sol := writePair(t)
	dir := t.TempDir()
	flat := writeFile(t, dir, "flat.txt", "100\n100\n100\n100\n")
	short := writeFile(t, dir, "short.txt", "100\n")

	tests := []struct {
		name string
		args []string
	}{
		{"no inputs", []string{"analyze"}},
		{"missing asset2", []string{"analyze", "--asset1", eth}},
		{"scenario with asset files", []string{"analyze", "--scenario", "x.yaml", "--asset1", eth, "--asset2", sol}},
		{"missing file", []string{"analyze", "--asset1", filepath.Join(dir, "nope.txt"), "--asset2", sol}},
		{"constant series", []string{"analyze", "--asset1", flat, "--asset2", sol}},
		{"too few prices", []string{"analyze", "--asset1", short, "--asset2", sol}},
		{"bad capital", []string{"analyze", "--asset1", eth, "--asset2", sol, "--capital", "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSize(t *testing.T) {
	out, err := execute(t, "size", "--beta", "2", "--capital", "10000", "--leverage", "2", "--json")
	require.NoError(t, err)

	var resp struct {
		BetaSource hedge.BetaSource  `json:"beta_source"`
		Result     hedge.HedgeResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, hedge.SourceComputed, resp.BetaSource)
	assert.InDelta(t, 5000.0/3, resp.Result.Asset1Size, 1e-9)
	assert.InDelta(t, 20000.0/3, resp.Result.Asset2SizeLeveraged, 1e-9)

	out, err = execute(t, "size", "--vol1", "50", "--vol2", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "2.0000 (vol_ratio)")

	_, err = execute(t, "size", "--beta", "-1")
	assert.ErrorIs(t, err, hedge.ErrDegenerateInput)

	_, err = execute(t, "size", "--beta", "1", "--vol1", "50")
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	dir := t.TempDir()
	out1 := filepath.Join(dir, "eth.txt")
	out2 := filepath.Join(dir, "sol.txt")

	out, err := execute(t, "sample", "--period", "12", "--seed", "42", "--out1", out1, "--out2", out2)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 12 prices")

	data, err := os.ReadFile(out1)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "3500.00", lines[0])

	// 생성된 파일은 그대로 analyze 입력이 됨
	_, err = execute(t, "analyze", "--asset1", out1, "--asset2", out2, "--json")
	assert.NoError(t, err)

	stdout1, err := execute(t, "sample", "--period", "5", "--seed", "7")
	require.NoError(t, err)
	stdout2, err := execute(t, "sample", "--period", "5", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, stdout1, stdout2)
	assert.Contains(t, stdout1, "# asset2\n140.00")

	_, err = execute(t, "sample", "--period", "1")
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1666.6666, "$1,666.67"},
		{999.999, "$1,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-2500.5, "-$2,500.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in))
	}
}

func TestFormatPercentAndRatio(t *testing.T) {
	assert.Equal(t, "70.12%", FormatPercent(70.1234))
	assert.Equal(t, "1.2857", FormatRatio(90.0/70.0))
}
