package model

// rewardLadder holds tiered payouts indexed by how many referrals the
// referrer already has on record.
var rewardLadder = [...]float64{500, 400, 300, 200, 100}

// ReferralReward returns the payout for a referrer whose referral count
// before the current signup is n. Counts past the ladder earn nothing.
func ReferralReward(n int) float64 {
	if n < 0 || n >= len(rewardLadder) {
		return 0
	}
	return rewardLadder[n]
}
