package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/betahedge/internal/sample"
)

type sampleOptions struct {
	period int
	seed   int64
	out1   string
	out2   string
}

func newSampleCmd(root *rootOptions) *cobra.Command {
	opts := &sampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "데모용 랜덤워크 가격 생성",
		Long: `ETH-like / SOL-like 랜덤워크 가격을 생성합니다 (데모 전용).

--seed 0 이면 매번 다른 경로, 그 외에는 재현 가능.
--out1/--out2 가 없으면 표준 출력으로 씁니다.

Example:
  go run ./cmd/hedge sample
  go run ./cmd/hedge sample --period 90 --seed 42 --out1 eth.txt --out2 sol.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, root, opts)
		},
	}

	// Flags
	cmd.Flags().IntVar(&opts.period, "period", 0, "가격 개수 (기본: SAMPLE_PERIOD)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "난수 seed (기본: SAMPLE_SEED)")
	cmd.Flags().StringVar(&opts.out1, "out1", "", "asset1 출력 파일")
	cmd.Flags().StringVar(&opts.out2, "out2", "", "asset2 출력 파일")

	cmd.MarkFlagsRequiredTogether("out1", "out2")

	return cmd
}

func runSample(cmd *cobra.Command, root *rootOptions, opts *sampleOptions) error {
	cfg, log, err := loadRuntime(root)
	if err != nil {
		return err
	}

	period := cfg.Sample.Period
	if cmd.Flags().Changed("period") {
		period = opts.period
	}
	seed := cfg.Sample.Seed
	if cmd.Flags().Changed("seed") {
		seed = opts.seed
	}

	asset1, asset2, err := sample.NewGenerator(seed).Pair(period)
	if err != nil {
		return fmt.Errorf("generate sample: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.out1 == "" {
		fmt.Fprintln(out, "# asset1")
		fmt.Fprintln(out, sample.Format(asset1))
		fmt.Fprintln(out, "# asset2")
		fmt.Fprintln(out, sample.Format(asset2))
		return nil
	}

	for _, f := range []struct {
		path   string
		prices []float64
	}{
		{opts.out1, asset1},
		{opts.out2, asset2},
	} {
		if err := os.WriteFile(f.path, []byte(sample.Format(f.prices)+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.path, err)
		}
	}

	log.WithFields(map[string]interface{}{
		"period": period,
		"seed":   seed,
	}).Debug("Sample prices written")
	PrintSuccess(out, fmt.Sprintf("Wrote %d prices to %s and %s", period, opts.out1, opts.out2))
	return nil
}
