package repository

import (
	"context"

	"github.com/refward/refward/internal/domain/model"
)

// BalanceRepository manages the per-user earnings ledger.
type BalanceRepository interface {
	GetSummary(ctx context.Context, userID int64) (*model.BalanceSummary, error)
	Credit(ctx context.Context, userID int64, amount float64) error
	Withdraw(ctx context.Context, userID int64, amount float64) error
}
