package app

import (
	"context"

	"github.com/refward/refward/internal/domain/model"
	"github.com/refward/refward/internal/usecase"
)

// RewardsFacade aggregates use cases behind the surface the HTTP layer needs.
type RewardsFacade struct {
	auth      *usecase.AuthUseCase
	referrals *usecase.ReferralUseCase
	balance   *usecase.BalanceUseCase
}

func NewRewardsFacade(auth *usecase.AuthUseCase, referrals *usecase.ReferralUseCase, balance *usecase.BalanceUseCase) *RewardsFacade {
	return &RewardsFacade{auth: auth, referrals: referrals, balance: balance}
}

func (f *RewardsFacade) Register(ctx context.Context, params model.SignupParams) (*model.User, string, error) {
	return f.auth.Register(ctx, params)
}

func (f *RewardsFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *RewardsFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *RewardsFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *RewardsFacade) CheckCode(ctx context.Context, code string) (*model.CodeCheck, error) {
	return f.referrals.CheckCode(ctx, code)
}

func (f *RewardsFacade) Referrals(ctx context.Context, userID int64) ([]model.ReferralEntry, error) {
	return f.referrals.History(ctx, userID)
}

func (f *RewardsFacade) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	return f.balance.Summary(ctx, userID)
}

func (f *RewardsFacade) Withdraw(ctx context.Context, userID int64, amount float64) error {
	return f.balance.Withdraw(ctx, userID, amount)
}

func (f *RewardsFacade) Withdrawals(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	return f.balance.WithdrawalsHistory(ctx, userID)
}
