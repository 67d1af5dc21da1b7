package main

import (
	"context"
	"log/slog"
	"os"

	"kioskdash/config"
	"kioskdash/internal/delivery"
	"kioskdash/internal/delivery/api"
	apimiddleware "kioskdash/internal/delivery/api/middleware"
	"kioskdash/internal/delivery/api/router/handler"
	"kioskdash/internal/infra/auth"
	"kioskdash/internal/infra/auth/payments"
	logs "kioskdash/internal/infra/log"
	"kioskdash/internal/infra/persistence/postgres"
	"kioskdash/internal/infra/pubsub"
	"kioskdash/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

// Organization and connection repositories are reached through the transaction manager.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDonationRepository,
			postgres.NewDonorChangeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionTokenService,
			auth.NewCredentialSealer,
			payments.NewOAuthService,
			payments.NewStateStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewConnectService,
			impl.NewDonationService,
			impl.NewDonorService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionCookie,
			handler.NewOAuthHandler,
			handler.NewSessionHandler,
			handler.NewAdminHandler,
			handler.NewDonationHandler,
			handler.NewDonorHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
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
