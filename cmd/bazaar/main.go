package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/delivery/scheduler"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/dedupe"
	"bazaar/internal/infra/discountconfig"
	"bazaar/internal/infra/gateway"
	"bazaar/internal/infra/lock"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/pubsub"
	"bazaar/internal/infra/qrcode"
	"bazaar/internal/infra/storage"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		lock.NewKeyedMutex,
		dedupe.New,
		func(gate *dedupe.Gate) usecase.DedupGate { return gate },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewCatalogRepository,
			postgres.NewComplaintRepository,
			postgres.NewTransactionManager,
			discountconfig.NewConfigRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewStaffTokenService,
			newQRCodeService,
			gateway.NewRestyGateway,
			storage.NewBlobMediaStore,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEligibilityService,
			impl.NewReferralService,
			impl.NewOrderService,
			impl.NewConversationService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewWebhookAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewStaffHandler,
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
			fx.Annotate(
				scheduler.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
