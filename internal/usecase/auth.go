package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/refward/refward/internal/domain/errors"
	"github.com/refward/refward/internal/domain/model"
	"github.com/refward/refward/internal/domain/repository"
	pkgAuth "github.com/refward/refward/internal/pkg/auth"
	"github.com/refward/refward/internal/pkg/refcode"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user with a fresh unique referral code, records the
// referral when a valid code was cited, and returns an auth token. The code
// uniqueness pre-check is optimistic; the store's unique constraint is the
// final word, so a collision surfaces as ErrCodeTaken and the code is redrawn.
func (u *AuthUseCase) Register(ctx context.Context, params model.SignupParams) (*model.User, string, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.City = strings.TrimSpace(params.City)
	params.Email = strings.TrimSpace(params.Email)
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(params.Password)
	if err != nil {
		return nil, "", err
	}

	newUser := model.NewUser{
		Name:         params.Name,
		City:         params.City,
		Email:        params.Email,
		PasswordHash: hash,
		ReferredBy:   strings.TrimSpace(params.ReferralCode),
	}

	for {
		code, err := refcode.New()
		if err != nil {
			return nil, "", err
		}

		taken, err := u.users.CodeExists(ctx, code)
		if err != nil {
			return nil, "", err
		}
		if taken {
			continue
		}

		usr, _, err := u.users.Register(ctx, newUser, code)
		if err != nil {
			if errors.Is(err, domainErrors.ErrCodeTaken) {
				continue
			}
			return nil, "", err
		}

		token, err := u.tokens.IssueToken(usr.ID)
		if err != nil {
			return nil, "", err
		}

		return usr, token, nil
	}
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
