package numeric

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds v to places decimals, half away from zero (same as PostgreSQL ROUND on numeric).
// Non-finite input yields 0 so payload numbers stay JSON-encodable.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Ratio returns num/den, or 0 when den is 0.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Percent returns round(num/den*100, places), or 0 when den is 0.
func Percent(num, den float64, places int32) float64 {
	return Round(Ratio(num, den)*100, places)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
