package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/betahedge/pkg/config"
	"github.com/wonny/betahedge/pkg/logger"
)

// rootOptions global flags
type rootOptions struct {
	verbose bool
}

// NewRootCmd builds the base command with every subcommand attached
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "hedge",
		Short: "페어 리스크 통계 + 베타 중립 헤지 계산기",
		Long: `Beta Hedge CLI

두 자산의 가격 시계열로 수익률, 변동성, Beta/상관계수를 계산하고
베타 중립 롱/숏 포지션 크기를 산출합니다.

Usage:
  go run ./cmd/hedge [command]

Examples:
  go run ./cmd/hedge analyze --asset1 eth.txt --asset2 sol.txt
  go run ./cmd/hedge analyze --scenario pair.yaml --json
  go run ./cmd/hedge size --beta 1.3 --capital 10000 --leverage 2
  go run ./cmd/hedge sample --seed 42 --out1 eth.txt --out2 sol.txt
  go run ./cmd/hedge api --port 8089`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logs)")

	rootCmd.AddCommand(
		newAnalyzeCmd(opts),
		newSizeCmd(opts),
		newSampleCmd(opts),
		newAPICmd(opts),
	)

	return rootCmd
}

// Execute runs the root command with the given context
// This is called by main.main(). It only needs to happen once.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadRuntime config + logger 초기화 (모든 커맨드 공통)
func loadRuntime(opts *rootOptions) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.New(cfg), nil
}
