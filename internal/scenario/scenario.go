package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wonny/betahedge/internal/analysis"
	"github.com/wonny/betahedge/internal/series"
)

// ErrUnsupportedFormat 확장자로 형식을 판단할 수 없음
var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// Asset 한 자산의 이름과 가격 파일
type Asset struct {
	Name string `yaml:"name" toml:"name" validate:"required,max=32"`
	File string `yaml:"file" toml:"file" validate:"required"`
}

// Scenario 페어 분석 시나리오 파일
// 0 값 필드는 config 기본값으로 채워짐 (analysis.Service)
type Scenario struct {
	Asset1          Asset   `yaml:"asset1" toml:"asset1" validate:"required"`
	Asset2          Asset   `yaml:"asset2" toml:"asset2" validate:"required"`
	Capital         float64 `yaml:"capital" toml:"capital" validate:"gte=0"`
	Leverage        float64 `yaml:"leverage" toml:"leverage" validate:"gte=0"`
	UseComputedBeta *bool   `yaml:"use_computed_beta" toml:"use_computed_beta"`
	VaRConfidence   float64 `yaml:"var_confidence" toml:"var_confidence" validate:"gte=0,lt=1"`

	dir string // 상대 경로 기준 디렉토리
}

// Load reads a YAML (.yaml/.yml) or TOML (.toml) scenario
// SSOT 핵심: 알 수 없는 필드는 즉시 실패 (오타 방지)
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&sc); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	sc.dir = filepath.Dir(path)
	return &sc, nil
}

// Input 가격 파일을 읽어 analysis.Input 생성
func (s *Scenario) Input() (analysis.Input, error) {
	prices1, err := s.readPrices(s.Asset1.File)
	if err != nil {
		return analysis.Input{}, fmt.Errorf("asset1 %s: %w", s.Asset1.Name, err)
	}
	prices2, err := s.readPrices(s.Asset2.File)
	if err != nil {
		return analysis.Input{}, fmt.Errorf("asset2 %s: %w", s.Asset2.Name, err)
	}

	return analysis.Input{
		Asset1Name:      s.Asset1.Name,
		Asset2Name:      s.Asset2.Name,
		Asset1Prices:    prices1,
		Asset2Prices:    prices2,
		Capital:         s.Capital,
		Leverage:        s.Leverage,
		UseComputedBeta: s.UseComputedBeta,
		VaRConfidence:   s.VaRConfidence,
	}, nil
}

// ResolvePath 시나리오 파일 기준 상대 경로 해석
func (s *Scenario) ResolvePath(file string) string {
	if filepath.IsAbs(file) || s.dir == "" {
		return file
	}
	return filepath.Join(s.dir, file)
}

func (s *Scenario) readPrices(file string) ([]float64, error) {
	f, err := os.Open(s.ResolvePath(file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return series.ParseReader(f)
}
