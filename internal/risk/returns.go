package risk

import "fmt"

// ComputeReturns 가격 시계열 → 단순 수익률 시계열
// returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
// 반환 길이 = len(prices) - 1
func ComputeReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: got %d prices, need 2", ErrInsufficientData, len(prices))
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			return nil, fmt.Errorf("%w: zero price at index %d", ErrDegenerateInput, i-1)
		}
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}

	return returns, nil
}
