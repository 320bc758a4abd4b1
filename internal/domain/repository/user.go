package repository

import (
	"context"

	"github.com/refward/refward/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// Register runs the whole signup as one transaction: the user row is
// inserted with the supplied fresh code, and when the cited referral code
// matches an existing user a referral edge is recorded and the referrer's
// balance credited per the reward ladder. The returned referral is nil when
// no edge was recorded.
type UserRepository interface {
	Register(ctx context.Context, user model.NewUser, code string) (*model.User, *model.Referral, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByCode(ctx context.Context, code string) (*model.User, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}
