package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/refward/refward/internal/domain/errors"
	"github.com/refward/refward/internal/domain/model"
	"github.com/refward/refward/internal/domain/repository"
)

// ReferralUseCase exposes read-only referral queries.
type ReferralUseCase struct {
	users     repository.UserRepository
	referrals repository.ReferralRepository
}

// NewReferralUseCase constructs ReferralUseCase.
func NewReferralUseCase(users repository.UserRepository, referrals repository.ReferralRepository) *ReferralUseCase {
	return &ReferralUseCase{users: users, referrals: referrals}
}

// CheckCode reports whether a referral code is registered along with the
// reward the next signup citing it would earn. Never mutates anything.
func (u *ReferralUseCase) CheckCode(ctx context.Context, code string) (*model.CodeCheck, error) {
	code = strings.TrimSpace(code)
	usr, err := u.users.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.CodeCheck{Valid: false, Message: "Invalid referral code"}, nil
		}
		return nil, err
	}

	count, err := u.referrals.CountByReferrer(ctx, usr.ID)
	if err != nil {
		return nil, err
	}

	reward := model.ReferralReward(count)
	message := "Code valid, but reward limit reached."
	if reward > 0 {
		message = fmt.Sprintf("Valid code! Referrer earns Rs.%.0f", reward)
	}
	return &model.CodeCheck{Valid: true, Reward: reward, Message: message}, nil
}

// History returns the referrer's recorded referrals, newest first.
func (u *ReferralUseCase) History(ctx context.Context, userID int64) ([]model.ReferralEntry, error) {
	return u.referrals.ListByReferrer(ctx, userID)
}
