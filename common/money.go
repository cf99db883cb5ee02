package common

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a balance or amount rounded to cents. Non-finite values,
// which decimal cannot represent, are printed as-is.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
