package main

import (
	"context"
	"log/slog"
	"os"

	"tesotunes/config"
	"tesotunes/internal/delivery"
	"tesotunes/internal/delivery/http"
	httpmiddleware "tesotunes/internal/delivery/http/middleware"
	"tesotunes/internal/delivery/http/router/handler"
	deliverymiddleware "tesotunes/internal/delivery/middleware"
	"tesotunes/internal/domain/service"
	"tesotunes/internal/infra/auth"
	logs "tesotunes/internal/infra/log"
	"tesotunes/internal/infra/persistence/postgres"
	"tesotunes/internal/infra/qrcode"
	"tesotunes/internal/infra/session"
	"tesotunes/internal/infra/sms"
	"tesotunes/internal/infra/storage"
	"tesotunes/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewKYCRepository,
			postgres.NewLoanRepository,
			postgres.NewDividendRepository,
			postgres.NewShareRepository,
			postgres.NewTicketRepository,
			postgres.NewAuditRepository,
			postgres.NewTransactionManager,
			session.NewRedisStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			sms.NewGatewayClient,
			storage.NewBlobStorage,
			newQRCodeService,
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
			impl.NewRegistrationService,
			impl.NewVerificationService,
			impl.NewUserService,
			impl.NewLoanService,
			impl.NewDividendService,
			impl.NewKYCService,
			impl.NewTicketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOnboardingHandler,
			handler.NewUserHandler,
			handler.NewVerificationHandler,
			handler.NewLoanHandler,
			handler.NewDividendHandler,
			handler.NewKYCHandler,
			handler.NewEventHandler,
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
