package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/adapter/backend"
	"github.com/polkiloo/storeadmin/internal/app"
	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/logger"
	"github.com/polkiloo/storeadmin/internal/pkg/auth"
	"github.com/polkiloo/storeadmin/internal/server/http/handlers"
	"github.com/polkiloo/storeadmin/internal/server/http/router"
	"github.com/polkiloo/storeadmin/internal/storage/postgres"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		backend.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.AdminFacade) handlers.AdminFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
