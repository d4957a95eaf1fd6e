package finance

import (
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// leadingNumber matches the decimal prefix of a typed amount, so "100abc" reads as 100.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads a user-entered amount. Blank, unparsable or non-finite input counts as 0.
func ParseAmount(v any) float64 {
	if s, ok := v.(string); ok {
		v = leadingNumber.FindString(strings.TrimSpace(s))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// DeriveNetProfit returns sell - fees - cost, unrounded.
func DeriveNetProfit(sell, fees, cost any) float64 {
	return ParseAmount(sell) - ParseAmount(fees) - ParseAmount(cost)
}
