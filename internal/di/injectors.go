//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"localjournal/internal"
	"localjournal/internal/controllers"
	"localjournal/internal/providers"
	"localjournal/internal/services"
	"localjournal/internal/storage"
	"localjournal/internal/structures"
	"localjournal/internal/views"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewFileManager,
		services.NewJournalService,
		services.NewFlashService,
		views.NewRenderer,
		controllers.NewJournalController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
