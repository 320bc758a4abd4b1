package dto

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Name         string `json:"name"`
	City         string `json:"city"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code"`
}

// RegisterResponse returns the fresh referral code assigned at signup.
type RegisterResponse struct {
	ReferralCode string `json:"referral_code"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse describes the authenticated user's dashboard data.
type ProfileResponse struct {
	Name         string `json:"name"`
	City         string `json:"city"`
	Email        string `json:"email"`
	ReferralCode string `json:"referral_code"`
}
