package dto

import "time"

// WithdrawRequest describes withdrawal request payload.
type WithdrawRequest struct {
	Amount float64 `json:"amount"`
}

// WithdrawResponse reports the outcome of a withdrawal command.
type WithdrawResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WithdrawalResponse describes withdrawal history entry.
type WithdrawalResponse struct {
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	WithdrawnAt time.Time `json:"withdrawn_at"`
}
