// Package core holds the transaction data model and the money/date
// arithmetic shared by every report.
//
// Amounts stay float64 through accumulation and are rounded to two decimal
// places only at the point of output.
package core

import "github.com/shopspring/decimal"

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// RoundUpToMultiple returns the smallest multiple of limit that is >= v.
// limit must be positive; v is expected non-negative.
func RoundUpToMultiple(v float64, limit int) float64 {
	d := decimal.NewFromFloat(v)
	l := decimal.NewFromInt(int64(limit))
	f, _ := d.Div(l).Ceil().Mul(l).Float64()
	return f
}
