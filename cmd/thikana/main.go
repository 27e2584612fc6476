package main

import (
	"context"
	"log/slog"
	"os"

	"thikana/config"
	"thikana/internal/compare"
	"thikana/internal/delivery"
	"thikana/internal/delivery/http"
	"thikana/internal/delivery/http/middleware"
	"thikana/internal/delivery/http/router/handler"
	"thikana/internal/infra/auth"
	logs "thikana/internal/infra/log"
	"thikana/internal/infra/persistence/postgres"
	"thikana/internal/infra/qrcode"
	"thikana/internal/infra/snapshot"
	"thikana/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		snapshot.NewBucketOpener,
		newCompareManager,
	)
}

// newCompareManager builds the per-owner comparison tray manager backed by the
// configured snapshot bucket.
func newCompareManager(opener compare.SnapshotOpener, cfg *config.Config, logger *slog.Logger) *compare.Manager {
	var opts []compare.Option
	if cfg.Compare != nil && cfg.Compare.MaxItems > 0 {
		opts = append(opts, compare.WithMaxItems(cfg.Compare.MaxItems))
	}

	return compare.NewManager(opener, logger, opts...)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPropertyRepository,
			postgres.NewProjectRepository,
			postgres.NewLeadRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewListingService,
			impl.NewCompareService,
			impl.NewLeadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewListingHandler,
			handler.NewCompareHandler,
			handler.NewLeadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
