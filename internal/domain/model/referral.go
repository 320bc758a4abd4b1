package model

import "time"

// Referral is the immutable edge recorded when a signup cites a valid code.
type Referral struct {
	ID             int64
	ReferrerID     int64
	ReferredUserID int64
	CodeUsed       string
	Reward         float64
	CreatedAt      time.Time
}

// ReferralEntry is a history row enriched with the referred user's name.
type ReferralEntry struct {
	ReferredName string
	Reward       float64
	CreatedAt    time.Time
}

// CodeCheck reports whether a referral code is registered and what the next
// signup citing it would earn.
type CodeCheck struct {
	Valid   bool
	Reward  float64
	Message string
}
