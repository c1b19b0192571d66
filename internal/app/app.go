// Package app assembles the fx graph shared by the player, save and combined binaries.
package app

import (
	"context"
	"log/slog"
	"os"

	"gameapi/config"
	"gameapi/internal/delivery"
	"gameapi/internal/delivery/api"
	"gameapi/internal/delivery/api/router/handler"
	"gameapi/internal/infra/auth"
	"gameapi/internal/infra/cache"
	"gameapi/internal/infra/idgen"
	logs "gameapi/internal/infra/log"
	"gameapi/internal/infra/persistence"
	"gameapi/internal/infra/pubsub"
	"gameapi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// New builds an application serving the given route groups.
func New(routes ...fx.Option) *fx.App {
	return fx.New(
		fx.Provide(config.New),
		Core(),
		fx.Options(routes...),
		InjectDelivery(),
		fx.Invoke(
			startServer,
		),
	)
}

// Core provides everything below the HTTP handlers. Callers supply *config.Config.
func Core() fx.Option {
	return fx.Options(
		InjectInfra(),
		InjectRepo(),
		InjectService(),
		InjectUsecase(),
	)
}

// InjectInfra provides the logger and the root context.
func InjectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// InjectRepo provides the storage driver and the player cache.
func InjectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
			cache.New,
		),
	)
}

// InjectService provides the hasher, token service, id generator and event publisher.
func InjectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			auth.NewJWTService,
			idgen.NewGenerator,
			pubsub.NewEventPublisher,
		),
	)
}

// InjectUsecase provides both use cases. Save routes resolve tokens through the player use case,
// so a save-only binary needs it too.
func InjectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlayerService,
			impl.NewSaveService,
		),
	)
}

// PlayerRoutes mounts the account routes.
func PlayerRoutes() fx.Option {
	return fx.Provide(handler.NewPlayerHandler)
}

// SaveRoutes mounts the save-document routes.
func SaveRoutes() fx.Option {
	return fx.Provide(handler.NewSaveHandler)
}

// DefaultRoutes mounts both groups under their default prefixes when neither prefix is configured,
// so the combined binary never registers two handlers on the same root path.
func DefaultRoutes() fx.Option {
	return fx.Decorate(func(cfg *config.Config) *config.Config {
		if cfg.Routes.Player == "" && cfg.Routes.Save == "" {
			cfg.Routes = config.DefaultRoutes()
		}

		return cfg
	})
}

// InjectDelivery provides the HTTP server.
func InjectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
