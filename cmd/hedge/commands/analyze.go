package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/betahedge/internal/analysis"
	"github.com/wonny/betahedge/internal/hedge"
	"github.com/wonny/betahedge/internal/risk"
	"github.com/wonny/betahedge/internal/scenario"
	"github.com/wonny/betahedge/internal/series"
)

type analyzeOptions struct {
	asset1     string
	asset2     string
	name1      string
	name2      string
	scenario   string
	capital    float64
	leverage   float64
	useBeta    bool
	confidence float64
	json       bool
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "페어 통계 + 헤지 사이징",
		Long: `두 가격 파일(한 줄에 가격 하나, CSV면 마지막 열)을 읽어
Beta, 상관계수, R², 변동성, 헤지 포지션, 페어 VaR를 출력합니다.

두 파일은 같은 기간/주기로 정렬되어 있어야 합니다.

Example:
  go run ./cmd/hedge analyze --asset1 eth.txt --asset2 sol.txt
  go run ./cmd/hedge analyze --asset1 eth.csv --asset2 sol.csv --capital 20000 --leverage 3
  go run ./cmd/hedge analyze --asset1 eth.txt --asset2 sol.txt --use-beta=false
  go run ./cmd/hedge analyze --scenario pair.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, opts)
		},
	}

	// Flags
	cmd.Flags().StringVar(&opts.asset1, "asset1", "", "asset1 가격 파일")
	cmd.Flags().StringVar(&opts.asset2, "asset2", "", "asset2 가격 파일")
	cmd.Flags().StringVar(&opts.name1, "name1", "", "asset1 이름 (기본: 파일명)")
	cmd.Flags().StringVar(&opts.name2, "name2", "", "asset2 이름 (기본: 파일명)")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "시나리오 파일 (.yaml/.yml/.toml)")
	cmd.Flags().Float64Var(&opts.capital, "capital", 0, "총 자본 (기본: HEDGE_CAPITAL)")
	cmd.Flags().Float64Var(&opts.leverage, "leverage", 0, "레버리지 배수 (기본: HEDGE_LEVERAGE)")
	cmd.Flags().BoolVar(&opts.useBeta, "use-beta", true, "계산된 Beta로 사이징 (false면 변동성 비율)")
	cmd.Flags().Float64Var(&opts.confidence, "confidence", 0, "VaR 신뢰수준 (기본: HEDGE_VAR_CONFIDENCE)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "JSON 출력")

	cmd.MarkFlagsMutuallyExclusive("scenario", "asset1")
	cmd.MarkFlagsMutuallyExclusive("scenario", "asset2")
	cmd.MarkFlagsRequiredTogether("asset1", "asset2")

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootOptions, opts *analyzeOptions) error {
	cfg, log, err := loadRuntime(root)
	if err != nil {
		return err
	}

	in, err := buildAnalyzeInput(cmd, opts)
	if err != nil {
		return err
	}

	svc := analysis.NewService(risk.NewEngine(), cfg.Hedge, log)
	report, err := svc.Analyze(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(out, report)
	return nil
}

// buildAnalyzeInput 시나리오 또는 파일 플래그 → analysis.Input
// 명시적으로 지정된 플래그는 시나리오 값보다 우선
func buildAnalyzeInput(cmd *cobra.Command, opts *analyzeOptions) (analysis.Input, error) {
	var in analysis.Input

	switch {
	case opts.scenario != "":
		sc, err := scenario.Load(opts.scenario)
		if err != nil {
			return in, fmt.Errorf("load scenario: %w", err)
		}
		if in, err = sc.Input(); err != nil {
			return in, fmt.Errorf("read scenario prices: %w", err)
		}
	case opts.asset1 != "" && opts.asset2 != "":
		prices1, err := readPriceFile(opts.asset1)
		if err != nil {
			return in, err
		}
		prices2, err := readPriceFile(opts.asset2)
		if err != nil {
			return in, err
		}
		in.Asset1Name = assetName(opts.name1, opts.asset1)
		in.Asset2Name = assetName(opts.name2, opts.asset2)
		in.Asset1Prices = prices1
		in.Asset2Prices = prices2
	default:
		return in, errors.New("either --scenario or both --asset1 and --asset2 are required")
	}

	flags := cmd.Flags()
	if flags.Changed("capital") {
		in.Capital = opts.capital
	}
	if flags.Changed("leverage") {
		in.Leverage = opts.leverage
	}
	if flags.Changed("confidence") {
		in.VaRConfidence = opts.confidence
	}
	if flags.Changed("use-beta") {
		useBeta := opts.useBeta
		in.UseComputedBeta = &useBeta
	}

	return in, nil
}

func readPriceFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price file: %w", err)
	}
	defer f.Close()

	prices, err := series.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return prices, nil
}

// assetName 이름 플래그가 없으면 확장자 뺀 파일명
func assetName(name, path string) string {
	if name != "" {
		return name
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// printReport 사람이 읽는 분석 리포트
func printReport(w io.Writer, r *analysis.Report) {
	PrintHeader(w, fmt.Sprintf("Pair Analysis: %s / %s", r.Asset1.Name, r.Asset2.Name),
		[2]string{"Run ID", r.RunID},
		[2]string{"Created", r.CreatedAt.Format("2006-01-02 15:04:05")},
		[2]string{"Returns", fmt.Sprintf("%d", r.SampleSize)},
	)

	PrintSection(w, "Volatility")
	widths := []int{12, 8, 12, 12}
	PrintTableHeader(w, []string{"Asset", "Prices", "Daily Vol", "Annual Vol"}, widths)
	for _, a := range []analysis.AssetSummary{r.Asset1, r.Asset2} {
		PrintTableRow(w, []string{
			a.Name,
			fmt.Sprintf("%d", a.PriceCount),
			FormatPercent(a.DailyVol),
			FormatPercent(a.AnnualizedVol),
		}, widths)
	}

	PrintSection(w, "Beta")
	PrintKeyValue(w, "Beta", FormatRatio(r.Beta), 12)
	PrintKeyValue(w, "Correlation", FormatRatio(r.Correlation), 12)
	PrintKeyValue(w, "R²", FormatRatio(r.RSquared), 12)
	PrintKeyValue(w, "Vol Ratio", FormatRatio(r.VolRatio), 12)
	PrintKeyValue(w, "Sizing Beta", fmt.Sprintf("%s (%s)", FormatRatio(r.SizingBeta), r.BetaSource), 12)

	printHedge(w, &r.Hedge, r.Asset1.Name, r.Asset2.Name)

	if r.PairRisk != nil {
		PrintSection(w, fmt.Sprintf("Pair VaR (%.0f%%, daily)", r.PairRisk.LongAsset1.Confidence*100))
		pr := r.PairRisk
		PrintKeyValue(w, "Long "+r.Asset1.Name, fmt.Sprintf("VaR %s  CVaR %s  MDD %s",
			FormatPercent(pr.LongAsset1.VaR*100), FormatPercent(pr.LongAsset1.CVaR*100), FormatPercent(pr.LongMaxDrawdown*100)), 12)
		PrintKeyValue(w, "Short "+r.Asset1.Name, fmt.Sprintf("VaR %s  CVaR %s  MDD %s",
			FormatPercent(pr.ShortAsset1.VaR*100), FormatPercent(pr.ShortAsset1.CVaR*100), FormatPercent(pr.ShortMaxDrawdown*100)), 12)
	}

	PrintDoubleSeparator(w)

	if r.Correlation < 0.5 && r.Correlation > -0.5 {
		PrintWarning(w, "약한 상관관계: 베타 중립 헤지 효과가 제한적일 수 있음")
	}
}

// printHedge 양방향 포지션 표
func printHedge(w io.Writer, h *hedge.HedgeResult, name1, name2 string) {
	PrintSection(w, fmt.Sprintf("Hedge (capital %s, %gx)", FormatMoney(h.Capital), h.Leverage))

	names := map[int]string{1: name1, 2: name2}
	widths := []int{24, 10, 14, 14}
	PrintTableHeader(w, []string{"Position", "Side", "Notional", "Leveraged"}, widths)
	for _, p := range []struct {
		label string
		pos   hedge.Position
	}{
		{"Long " + name1 + " / Short " + name2, h.LongAsset1},
		{"Short " + name1 + " / Long " + name2, h.ShortAsset1},
	} {
		for i, leg := range []hedge.Leg{p.pos.Long, p.pos.Short} {
			label := ""
			if i == 0 {
				label = p.label
			}
			PrintTableRow(w, []string{
				label,
				fmt.Sprintf("%s %s", leg.Side, names[leg.Asset]),
				FormatMoney(leg.Notional),
				FormatMoney(leg.Leveraged),
			}, widths)
		}
	}
}
