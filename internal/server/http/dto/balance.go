package dto

// BalanceResponse represents the earnings ledger summary.
type BalanceResponse struct {
	TotalEarned float64 `json:"total_earned"`
	Available   float64 `json:"available"`
}
