package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/refward/refward/internal/app"
	"github.com/refward/refward/internal/config"
	"github.com/refward/refward/internal/domain/model"
	"github.com/refward/refward/internal/domain/repository"
	"github.com/refward/refward/internal/storage/postgres"
	"github.com/refward/refward/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		TokenSecret:     "secret",
		TokenTTL:        time.Minute,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	referralRepo := &test.ReferralRepositoryStub{}
	balanceRepo := &test.BalanceRepositoryStub{Summary: &model.BalanceSummary{}}
	withdrawalRepo := &test.WithdrawalRepositoryStub{}

	var facade *app.RewardsFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ReferralRepository(referralRepo)),
			fx.Replace(repository.BalanceRepository(balanceRepo)),
			fx.Replace(repository.WithdrawalRepository(withdrawalRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected rewards facade instance")
	}
}
