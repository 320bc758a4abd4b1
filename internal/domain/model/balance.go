package model

// BalanceSummary aggregates lifetime earnings and the withdrawable remainder.
type BalanceSummary struct {
	TotalEarned float64
	Available   float64
}
