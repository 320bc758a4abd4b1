package model

import "time"

// WithdrawalStatus describes settlement state of a withdrawal.
type WithdrawalStatus string

const (
	WithdrawalStatusCompleted WithdrawalStatus = "COMPLETED"
)

// Withdrawal represents a single cash-out from the available balance.
type Withdrawal struct {
	ID        int64
	UserID    int64
	Amount    float64
	Status    WithdrawalStatus
	CreatedAt time.Time
}
