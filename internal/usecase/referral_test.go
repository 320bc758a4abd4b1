package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/refward/refward/internal/domain/model"
	testhelpers "github.com/refward/refward/internal/test"
)

func TestReferralUseCaseCheckCodeUnknown(t *testing.T) {
	uc := NewReferralUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.ReferralRepositoryStub{})

	check, err := uc.CheckCode(context.Background(), "NOSUCH00")
	if err != nil {
		t.Fatalf("check code returned error: %v", err)
	}
	if check.Valid {
		t.Fatal("expected invalid result for unknown code")
	}
	if check.Message != "Invalid referral code" {
		t.Fatalf("unexpected message: %q", check.Message)
	}
}

func TestReferralUseCaseCheckCodeRewardTiers(t *testing.T) {
	cases := []struct {
		name       string
		count      int
		wantReward float64
		wantMsg    string
	}{
		{"first slot", 0, 500, "Valid code! Referrer earns Rs.500"},
		{"third slot", 2, 300, "Valid code! Referrer earns Rs.300"},
		{"last slot", 4, 100, "Valid code! Referrer earns Rs.100"},
		{"ladder exhausted", 5, 0, "Code valid, but reward limit reached."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := testhelpers.NewUserRepositoryStub()
			users.Seed("Ref", "ref@example.com", "REFCODE1")
			uc := NewReferralUseCase(users, &testhelpers.ReferralRepositoryStub{Count: tc.count})

			check, err := uc.CheckCode(context.Background(), "REFCODE1")
			if err != nil {
				t.Fatalf("check code returned error: %v", err)
			}
			if !check.Valid {
				t.Fatal("expected valid result")
			}
			if check.Reward != tc.wantReward {
				t.Fatalf("expected reward %v, got %v", tc.wantReward, check.Reward)
			}
			if check.Message != tc.wantMsg {
				t.Fatalf("unexpected message: %q", check.Message)
			}
		})
	}
}

func TestReferralUseCaseCheckCodeTrimsInput(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Seed("Ref", "ref@example.com", "REFCODE1")
	uc := NewReferralUseCase(users, &testhelpers.ReferralRepositoryStub{})

	check, err := uc.CheckCode(context.Background(), "  REFCODE1  ")
	if err != nil {
		t.Fatalf("check code returned error: %v", err)
	}
	if !check.Valid {
		t.Fatal("expected valid result for trimmed code")
	}
}

func TestReferralUseCaseCheckCodePropagatesCountError(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Seed("Ref", "ref@example.com", "REFCODE1")
	boom := errors.New("boom")
	uc := NewReferralUseCase(users, &testhelpers.ReferralRepositoryStub{CountFn: func(context.Context, int64) (int, error) {
		return 0, boom
	}})

	if _, err := uc.CheckCode(context.Background(), "REFCODE1"); !errors.Is(err, boom) {
		t.Fatalf("expected count error to propagate, got %v", err)
	}
}

func TestReferralUseCaseHistory(t *testing.T) {
	entries := []model.ReferralEntry{
		{ReferredName: "friend", Reward: 500, CreatedAt: time.Now()},
		{ReferredName: "another", Reward: 400, CreatedAt: time.Now()},
	}
	uc := NewReferralUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.ReferralRepositoryStub{Entries: entries})

	got, err := uc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
}
