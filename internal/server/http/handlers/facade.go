package handlers

import (
	"context"

	"github.com/refward/refward/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, params model.SignupParams) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
}

// ProfileFacade exposes the authenticated user's own record.
type ProfileFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// ReferralFacade encapsulates referral queries exposed via HTTP.
type ReferralFacade interface {
	CheckCode(ctx context.Context, code string) (*model.CodeCheck, error)
	Referrals(ctx context.Context, userID int64) ([]model.ReferralEntry, error)
}

// BalanceFacade provides balance related operations.
type BalanceFacade interface {
	Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error)
	Withdraw(ctx context.Context, userID int64, amount float64) error
	Withdrawals(ctx context.Context, userID int64) ([]model.Withdrawal, error)
}

// RewardsFacade aggregates the full set of operations used across handlers.
type RewardsFacade interface {
	AuthFacade
	ProfileFacade
	ReferralFacade
	BalanceFacade
}
