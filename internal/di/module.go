package di

import (
	"github.com/refward/refward/internal/app"
	"github.com/refward/refward/internal/config"
	"github.com/refward/refward/internal/logger"
	"github.com/refward/refward/internal/pkg/auth"
	"github.com/refward/refward/internal/server/http/handlers"
	"github.com/refward/refward/internal/server/http/router"
	"github.com/refward/refward/internal/storage/postgres"
	"github.com/refward/refward/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.RewardsFacade) handlers.RewardsFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
