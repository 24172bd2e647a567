package analysis

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinPrices 수익률 계산에 필요한 최소 가격 수
const MinPrices = 2

// ValidationError 입력 거부 (계산 전에 중단, 부분 결과 없음)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError err 체인에 ValidationError가 있는지
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

var validate = newValidator()

// newValidator 에러 필드명을 json 태그 이름으로
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct struct 태그 검증 → 첫 번째 위반을 ValidationError로
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q (param %q, got %v)", fe.Tag(), fe.Param(), fe.Value()),
		}
	}
	return ValidationError{Field: "input", Message: err.Error()}
}

// validateSeries 두 가격 시계열 길이 검증
func validateSeries(prices1, prices2 []float64) error {
	if len(prices1) < MinPrices {
		return ValidationError{"asset1", fmt.Sprintf("need at least %d valid prices, got %d", MinPrices, len(prices1))}
	}
	if len(prices2) < MinPrices {
		return ValidationError{"asset2", fmt.Sprintf("need at least %d valid prices, got %d", MinPrices, len(prices2))}
	}
	if len(prices1) != len(prices2) {
		return ValidationError{"series", fmt.Sprintf("length mismatch: asset1 has %d prices, asset2 has %d", len(prices1), len(prices2))}
	}
	return nil
}
