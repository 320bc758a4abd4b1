package test

import (
	"context"

	domainErrors "github.com/refward/refward/internal/domain/errors"
	"github.com/refward/refward/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests and mimics the
// transactional signup semantics of the real storage: referral counted
// before the new edge is recorded, ladder reward credited to the referrer.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	ByCode  map[string]*model.User

	Referrals map[int64][]model.Referral
	Balances  map[int64]*model.BalanceSummary

	// TakenCodes makes CodeExists report collisions for specific codes.
	TakenCodes map[string]bool

	Next int64
	Err  error

	RegisterFn func(context.Context, model.NewUser, string) (*model.User, *model.Referral, error)
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail:   make(map[string]*model.User),
		ByID:      make(map[int64]*model.User),
		ByCode:    make(map[string]*model.User),
		Referrals: make(map[int64][]model.Referral),
		Balances:  make(map[int64]*model.BalanceSummary),
		Next:      1,
	}
}

// Seed adds an existing user with the given code and returns it.
func (s *UserRepositoryStub) Seed(name, email, code string) *model.User {
	user := &model.User{ID: s.Next, Name: name, Email: email, ReferralCode: code}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	s.ByCode[code] = user
	s.Balances[user.ID] = &model.BalanceSummary{}
	return user
}

// Register creates the user and, when the cited code matches, the referral
// edge plus balance credit, all against the in-memory maps.
func (s *UserRepositoryStub) Register(ctx context.Context, user model.NewUser, code string) (*model.User, *model.Referral, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, user, code)
	}
	if s.Err != nil {
		return nil, nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByCode[code]; exists {
		return nil, nil, domainErrors.ErrCodeTaken
	}

	created := &model.User{
		ID:           s.Next,
		Name:         user.Name,
		City:         user.City,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		ReferralCode: code,
		ReferredBy:   user.ReferredBy,
	}
	s.Next++
	s.ByEmail[created.Email] = created
	s.ByID[created.ID] = created
	s.ByCode[code] = created
	s.Balances[created.ID] = &model.BalanceSummary{}

	if user.ReferredBy == "" {
		return created, nil, nil
	}
	referrer, ok := s.ByCode[user.ReferredBy]
	if !ok {
		return created, nil, nil
	}

	reward := model.ReferralReward(len(s.Referrals[referrer.ID]))
	edge := model.Referral{
		ID:             int64(len(s.Referrals[referrer.ID]) + 1),
		ReferrerID:     referrer.ID,
		ReferredUserID: created.ID,
		CodeUsed:       user.ReferredBy,
		Reward:         reward,
	}
	s.Referrals[referrer.ID] = append(s.Referrals[referrer.ID], edge)
	if reward > 0 {
		balance := s.Balances[referrer.ID]
		if balance == nil {
			balance = &model.BalanceSummary{}
			s.Balances[referrer.ID] = balance
		}
		balance.TotalEarned += reward
		balance.Available += reward
	}
	return created, &edge, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByCode fetches user owning the referral code or returns not found.
func (s *UserRepositoryStub) GetByCode(ctx context.Context, code string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByCode[code]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CodeExists reports whether a code is registered or marked taken.
func (s *UserRepositoryStub) CodeExists(ctx context.Context, code string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	if s.TakenCodes[code] {
		return true, nil
	}
	_, ok := s.ByCode[code]
	return ok, nil
}

// ReferralRepositoryStub allows tests to customize referral reads.
type ReferralRepositoryStub struct {
	CountFn func(context.Context, int64) (int, error)
	ListFn  func(context.Context, int64) ([]model.ReferralEntry, error)
	Count   int
	Entries []model.ReferralEntry
}

// CountByReferrer returns configured count.
func (s *ReferralRepositoryStub) CountByReferrer(ctx context.Context, referrerID int64) (int, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, referrerID)
	}
	return s.Count, nil
}

// ListByReferrer returns configured entries.
func (s *ReferralRepositoryStub) ListByReferrer(ctx context.Context, referrerID int64) ([]model.ReferralEntry, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, referrerID)
	}
	return s.Entries, nil
}

// BalanceRepositoryStub lets tests control balance data.
type BalanceRepositoryStub struct {
	GetSummaryFn func(context.Context, int64) (*model.BalanceSummary, error)
	CreditFn     func(context.Context, int64, float64) error
	WithdrawFn   func(context.Context, int64, float64) error
	Summary      *model.BalanceSummary
	WithdrawErr  error
}

// GetSummary returns configured summary or default error.
func (s *BalanceRepositoryStub) GetSummary(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	if s.GetSummaryFn != nil {
		return s.GetSummaryFn(ctx, userID)
	}
	if s.Summary == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Summary, nil
}

// Credit applies override when provided.
func (s *BalanceRepositoryStub) Credit(ctx context.Context, userID int64, amount float64) error {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, userID, amount)
	}
	return nil
}

// Withdraw returns configured error or executes override.
func (s *BalanceRepositoryStub) Withdraw(ctx context.Context, userID int64, amount float64) error {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, userID, amount)
	}
	return s.WithdrawErr
}

// WithdrawalRepositoryStub stores withdrawals history for tests.
type WithdrawalRepositoryStub struct {
	ListFn func(context.Context, int64) ([]model.Withdrawal, error)
	Items  []model.Withdrawal
}

// ListByUser returns configured withdrawals.
func (s *WithdrawalRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Items, nil
}
