package model

import "time"

// User represents a registered member of the referral program.
type User struct {
	ID           int64
	Name         string
	City         string
	Email        string
	PasswordHash string
	ReferralCode string
	ReferredBy   string
	CreatedAt    time.Time
}

// NewUser carries the signup fields persisted for a fresh registration.
type NewUser struct {
	Name         string
	City         string
	Email        string
	PasswordHash string
	ReferredBy   string
}

// SignupParams carries the raw signup form fields before hashing and code
// generation.
type SignupParams struct {
	Name         string
	City         string
	Email        string
	Password     string
	ReferralCode string
}
