package dto

import "time"

// CodeCheckResponse reports referral code validity and the next reward.
// Reward is absent for unknown codes.
type CodeCheckResponse struct {
	Valid   bool     `json:"valid"`
	Reward  *float64 `json:"reward,omitempty"`
	Message string   `json:"message"`
}

// ReferralResponse describes a referral history entry.
type ReferralResponse struct {
	ReferredName string    `json:"referred_name"`
	Reward       float64   `json:"reward"`
	ReferredAt   time.Time `json:"referred_at"`
}
