package series

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix 필드 앞부분의 실수 리터럴 ("123.4abc" → "123.4")
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Parse 원시 텍스트를 가격 시계열로 변환
// ⭐ 규칙:
// - 줄 단위 분리, 앞뒤 공백 제거, 빈 줄 무시
// - 콤마가 있으면 마지막 필드가 가격 (timestamp,price / OHLC CSV)
// - 숫자로 읽을 수 없는 줄은 조용히 버림 (에러 없음)
// 입력 순서 = 시간 순서
func Parse(text string) []float64 {
	prices := make([]float64, 0)
	for _, line := range strings.Split(text, "\n") {
		if price, ok := parseLine(line); ok {
			prices = append(prices, price)
		}
	}
	return prices
}

// ParseReader Parse와 동일한 규칙으로 스트림을 읽음
// 에러는 reader I/O 에러뿐
func ParseReader(r io.Reader) ([]float64, error) {
	prices := make([]float64, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if price, ok := parseLine(scanner.Text()); ok {
			prices = append(prices, price)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return prices, nil
}

// parseLine 한 줄에서 가격 추출
func parseLine(line string) (float64, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}

	field := line
	if idx := strings.LastIndex(line, ","); idx >= 0 {
		field = line[idx+1:]
	}

	return parseNumber(field)
}

// parseNumber 필드 앞부분의 숫자만 읽음 (뒤따르는 문자는 무시)
func parseNumber(field string) (float64, bool) {
	literal := numericPrefix.FindString(strings.TrimSpace(field))
	if literal == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// 범위 초과 (1e400 등) 포함
		return 0, false
	}
	return value, true
}
