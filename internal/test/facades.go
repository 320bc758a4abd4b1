package test

import (
	"context"
	"time"

	"github.com/refward/refward/internal/domain/model"
)

// ProfileFacadeStub serves user profiles for handler tests.
type ProfileFacadeStub struct {
	ProfileFn func(context.Context, int64) (*model.User, error)
}

// Profile delegates to provided function or returns a default user.
func (s ProfileFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "user", Email: "user@example.com", ReferralCode: "AAAA1111"}, nil
}

// ReferralFacadeStub provides controllable behaviour for referral endpoints.
type ReferralFacadeStub struct {
	CheckCodeFn func(context.Context, string) (*model.CodeCheck, error)
	ReferralsFn func(context.Context, int64) ([]model.ReferralEntry, error)
}

// CheckCode delegates to provided function or reports a valid code.
func (s ReferralFacadeStub) CheckCode(ctx context.Context, code string) (*model.CodeCheck, error) {
	if s.CheckCodeFn != nil {
		return s.CheckCodeFn(ctx, code)
	}
	return &model.CodeCheck{Valid: true, Reward: 500, Message: "Valid code! Referrer earns Rs.500"}, nil
}

// Referrals returns predefined referral history for given user.
func (s ReferralFacadeStub) Referrals(ctx context.Context, userID int64) ([]model.ReferralEntry, error) {
	if s.ReferralsFn != nil {
		return s.ReferralsFn(ctx, userID)
	}
	return []model.ReferralEntry{{ReferredName: "friend", Reward: 500, CreatedAt: time.Unix(0, 0)}}, nil
}

// BalanceFacadeStub simulates balance operations.
type BalanceFacadeStub struct {
	BalanceFn     func(context.Context, int64) (*model.BalanceSummary, error)
	WithdrawFn    func(context.Context, int64, float64) error
	WithdrawalsFn func(context.Context, int64) ([]model.Withdrawal, error)
}

// Balance returns stored summary or default data.
func (s BalanceFacadeStub) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return &model.BalanceSummary{TotalEarned: 900, Available: 400}, nil
}

// Withdraw executes configured withdrawal handler.
func (s BalanceFacadeStub) Withdraw(ctx context.Context, userID int64, amount float64) error {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, userID, amount)
	}
	return nil
}

// Withdrawals returns preconfigured history.
func (s BalanceFacadeStub) Withdrawals(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	if s.WithdrawalsFn != nil {
		return s.WithdrawalsFn(ctx, userID)
	}
	return []model.Withdrawal{{ID: 1, UserID: userID, Amount: 100, Status: model.WithdrawalStatusCompleted, CreatedAt: time.Unix(0, 0)}}, nil
}

// RewardsFacadeStub aggregates facade dependencies for HTTP layer tests.
type RewardsFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	ReferralFacadeStub
	BalanceFacadeStub
}
