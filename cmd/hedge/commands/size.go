package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/betahedge/internal/analysis"
	"github.com/wonny/betahedge/internal/risk"
)

type sizeOptions struct {
	beta     float64
	vol1     float64
	vol2     float64
	capital  float64
	leverage float64
	json     bool
}

func newSizeCmd(root *rootOptions) *cobra.Command {
	opts := &sizeOptions{}

	cmd := &cobra.Command{
		Use:   "size",
		Short: "베타 중립 포지션 크기 계산",
		Long: `가격 데이터 없이 Beta(또는 연율 변동성 비율)로 포지션 크기를 계산합니다.

--beta 가 없으면 beta = vol2 / vol1 (기본값: HEDGE_ASSET1_VOL, HEDGE_ASSET2_VOL)

Example:
  go run ./cmd/hedge size --beta 1.3 --capital 10000 --leverage 2
  go run ./cmd/hedge size --vol1 70 --vol2 90
  go run ./cmd/hedge size --beta 2 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(cmd, root, opts)
		},
	}

	// Flags
	cmd.Flags().Float64Var(&opts.beta, "beta", 0, "asset2 대 asset1 Beta")
	cmd.Flags().Float64Var(&opts.vol1, "vol1", 0, "asset1 연율 변동성 (%)")
	cmd.Flags().Float64Var(&opts.vol2, "vol2", 0, "asset2 연율 변동성 (%)")
	cmd.Flags().Float64Var(&opts.capital, "capital", 0, "총 자본 (기본: HEDGE_CAPITAL)")
	cmd.Flags().Float64Var(&opts.leverage, "leverage", 0, "레버리지 배수 (기본: HEDGE_LEVERAGE)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "JSON 출력")

	cmd.MarkFlagsMutuallyExclusive("beta", "vol1")
	cmd.MarkFlagsMutuallyExclusive("beta", "vol2")

	return cmd
}

func runSize(cmd *cobra.Command, root *rootOptions, opts *sizeOptions) error {
	cfg, log, err := loadRuntime(root)
	if err != nil {
		return err
	}

	in := analysis.SizingInput{
		Asset1Vol: opts.vol1,
		Asset2Vol: opts.vol2,
		Capital:   opts.capital,
		Leverage:  opts.leverage,
	}
	if cmd.Flags().Changed("beta") {
		beta := opts.beta
		in.Beta = &beta
	}

	svc := analysis.NewService(risk.NewEngine(), cfg.Hedge, log)
	result, source, err := svc.Size(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"beta_source": source,
			"result":      result,
		})
	}

	PrintHeader(out, "Beta-Neutral Hedge",
		[2]string{"Beta", fmt.Sprintf("%s (%s)", FormatRatio(result.Beta), source)},
		[2]string{"Per side", FormatMoney(result.CapitalPerSide)},
	)
	printHedge(out, result, "asset1", "asset2")
	PrintDoubleSeparator(out)
	return nil
}
