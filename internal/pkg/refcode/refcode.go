package refcode

import (
	"crypto/rand"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the fixed size of every referral code.
const Length = 8

// New draws a random uppercase-alphanumeric code. Uniqueness is the
// caller's concern: the store's unique constraint is the authoritative
// guard, a lookup before insert is only an optimistic pre-check.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}

// Valid reports whether s has the shape of a referral code.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
