package repository

import (
	"context"

	"github.com/refward/refward/internal/domain/model"
)

// ReferralRepository provides read access to recorded referral edges.
type ReferralRepository interface {
	CountByReferrer(ctx context.Context, referrerID int64) (int, error)
	ListByReferrer(ctx context.Context, referrerID int64) ([]model.ReferralEntry, error)
}
