package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/betahedge/internal/hedge"
	"github.com/wonny/betahedge/internal/risk"
	"github.com/wonny/betahedge/internal/series"
	"github.com/wonny/betahedge/pkg/config"
	"github.com/wonny/betahedge/pkg/logger"
)

// Service 페어 분석 파이프라인
// ⭐ SSOT: 검증 → 수익률 → 변동성 → Beta → 사이징 → 페어 VaR 순서는 여기서만
// 순수 계산은 risk/hedge 패키지, 로깅과 입력 거부는 이 레이어
type Service struct {
	engine   *risk.Engine
	defaults config.HedgeConfig
	logger   *logger.Logger
	now      func() time.Time
}

// NewService creates a new analysis service
func NewService(engine *risk.Engine, defaults config.HedgeConfig, log *logger.Logger) *Service {
	return &Service{
		engine:   engine,
		defaults: defaults,
		logger:   log,
		now:      time.Now,
	}
}

// Analyze 두 가격 시계열 → 분석 리포트
// 입력 거부(ValidationError)는 계산 전에 반환, 부분 결과 없음
func (s *Service) Analyze(ctx context.Context, in Input) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in = s.withDefaults(in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	// 1. Parse
	prices1 := resolvePrices(in.Asset1Prices, in.Asset1Data)
	prices2 := resolvePrices(in.Asset2Prices, in.Asset2Data)
	if err := validateSeries(prices1, prices2); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"asset1_prices": len(prices1),
			"asset2_prices": len(prices2),
		}).Warn("Pair analysis rejected")
		return nil, err
	}

	// 2. Returns
	returns1, err := s.engine.Returns(prices1)
	if err != nil {
		return nil, fmt.Errorf("asset1 returns: %w", err)
	}
	returns2, err := s.engine.Returns(prices2)
	if err != nil {
		return nil, fmt.Errorf("asset2 returns: %w", err)
	}

	// 3. Volatility
	vol1, err := s.engine.Volatility(returns1)
	if err != nil {
		return nil, fmt.Errorf("asset1 volatility: %w", err)
	}
	vol2, err := s.engine.Volatility(returns2)
	if err != nil {
		return nil, fmt.Errorf("asset2 volatility: %w", err)
	}

	// 4. Beta (asset2 on asset1)
	betaStats, err := s.engine.Beta(returns1, returns2)
	if err != nil {
		return nil, fmt.Errorf("beta: %w", err)
	}

	// 5. Sizing: 계산된 Beta 또는 계산된 변동성 비율
	var computed *float64
	if *in.UseComputedBeta {
		computed = &betaStats.Beta
	}
	sizingBeta, source, err := hedge.ResolveBeta(computed, vol1.AnnualizedVol, vol2.AnnualizedVol)
	if err != nil {
		return nil, fmt.Errorf("resolve beta: %w", err)
	}
	sizes, err := hedge.ComputeHedgeSizes(sizingBeta, in.Capital, in.Leverage)
	if err != nil {
		return nil, fmt.Errorf("hedge sizing: %w", err)
	}

	// 6. Pair VaR
	w1, w2 := sizes.Weights()
	pairRisk, err := s.engine.PairRisk(returns1, returns2, w1, w2, in.VaRConfidence)
	if err != nil {
		return nil, fmt.Errorf("pair risk: %w", err)
	}

	report := &Report{
		RunID:     uuid.New().String(),
		CreatedAt: s.now(),
		Asset1: AssetSummary{
			Name:          in.Asset1Name,
			PriceCount:    len(prices1),
			AnnualizedVol: vol1.AnnualizedVol,
			DailyVol:      vol1.DailyVol * 100,
		},
		Asset2: AssetSummary{
			Name:          in.Asset2Name,
			PriceCount:    len(prices2),
			AnnualizedVol: vol2.AnnualizedVol,
			DailyVol:      vol2.DailyVol * 100,
		},
		Beta:        betaStats.Beta,
		Correlation: betaStats.Correlation,
		RSquared:    betaStats.RSquared,
		SampleSize:  betaStats.SampleSize,
		VolRatio:    vol2.AnnualizedVol / vol1.AnnualizedVol,
		SizingBeta:  sizingBeta,
		BetaSource:  source,
		Hedge:       sizes,
		PairRisk:    pairRisk,
	}

	s.logger.WithFields(map[string]interface{}{
		"run_id":      report.RunID,
		"asset1":      in.Asset1Name,
		"asset2":      in.Asset2Name,
		"prices":      len(prices1),
		"beta":        report.Beta,
		"correlation": report.Correlation,
		"beta_source": string(source),
	}).Info("Pair analysis completed")

	return report, nil
}

// Size 사이징만 (Beta 직접 지정 또는 수동 변동성 비율)
func (s *Service) Size(ctx context.Context, in SizingInput) (*hedge.HedgeResult, hedge.BetaSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	if in.Capital == 0 {
		in.Capital = s.defaults.Capital
	}
	if in.Leverage == 0 {
		in.Leverage = s.defaults.Leverage
	}
	if in.Beta == nil {
		if in.Asset1Vol == 0 {
			in.Asset1Vol = s.defaults.Asset1Vol
		}
		if in.Asset2Vol == 0 {
			in.Asset2Vol = s.defaults.Asset2Vol
		}
	}
	if err := validateStruct(in); err != nil {
		return nil, "", err
	}

	beta, source, err := hedge.ResolveBeta(in.Beta, in.Asset1Vol, in.Asset2Vol)
	if err != nil {
		return nil, source, err
	}

	result, err := hedge.ComputeHedgeSizes(beta, in.Capital, in.Leverage)
	if err != nil {
		s.logger.WithError(err).WithField("beta", beta).Warn("Hedge sizing rejected")
		return nil, source, err
	}

	s.logger.WithFields(map[string]interface{}{
		"beta":        beta,
		"beta_source": string(source),
		"capital":     in.Capital,
		"leverage":    in.Leverage,
	}).Debug("Hedge sized")

	return &result, source, nil
}

// withDefaults 0/nil 필드를 설정 기본값으로 채움
func (s *Service) withDefaults(in Input) Input {
	if in.Asset1Name == "" {
		in.Asset1Name = "asset1"
	}
	if in.Asset2Name == "" {
		in.Asset2Name = "asset2"
	}
	if in.Capital == 0 {
		in.Capital = s.defaults.Capital
	}
	if in.Leverage == 0 {
		in.Leverage = s.defaults.Leverage
	}
	if in.VaRConfidence == 0 {
		in.VaRConfidence = s.defaults.VaRConfidence
	}
	if in.UseComputedBeta == nil {
		useComputed := s.defaults.UseComputedBeta
		in.UseComputedBeta = &useComputed
	}
	return in
}

// resolvePrices 구조화된 가격 우선, 없으면 원시 텍스트 파싱
func resolvePrices(prices []float64, data string) []float64 {
	if len(prices) > 0 {
		return prices
	}
	return series.Parse(data)
}
