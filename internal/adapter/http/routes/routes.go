package routes

import (
	"context"
	"fmt"

	_ "rotaclick/docs"
	"rotaclick/internal/adapter/http/dto/request"
	"rotaclick/internal/adapter/http/handlers"
	"rotaclick/internal/adapter/http/middleware"
	"rotaclick/internal/adapter/persistence/repository"
	"rotaclick/internal/config"
	"rotaclick/internal/infrastructure/cache"
	"rotaclick/internal/infrastructure/database"
	"rotaclick/internal/infrastructure/identity"
	"rotaclick/internal/infrastructure/payments"
	"rotaclick/internal/infrastructure/spreadsheet"
	"rotaclick/internal/infrastructure/taxid"
	"rotaclick/internal/usecase"
	"rotaclick/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the application and blocks serving HTTP on cfg.Port.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	request.RegisterValidators()
	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addMetricsRoutes(router)

	if err := getRoutes(ctx, cfg, logger); err != nil {
		return err
	}

	logger.Info("[app][http] listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

type handlerSet struct {
	quotes   *handlers.QuoteHandler
	routes   *handlers.FreightRouteHandler
	freights *handlers.FreightHandler
	repasses *handlers.RepasseHandler
	carriers *handlers.CarrierHandler
	audit    *handlers.AuditHandler
	settings *handlers.SettingsHandler
}

func getRoutes(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.DynamoDBAutoCreate {
		if err := database.EnsureTables(ctx, ddb, cfg, logger); err != nil {
			return fmt.Errorf("ensure tables: %w", err)
		}
	}

	routeRepo := repository.NewFreightRouteDynamoRepository(ddb, cfg.FreightRoutesTable)
	freightRepo := repository.NewFreightDynamoRepository(ddb, cfg.FreightsTable)
	carrierRepo := repository.NewCarrierDynamoRepository(ddb, cfg.CarriersTable)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb, cfg.AuditLogsTable)
	settingsRepo := repository.NewPlatformSettingsDynamoRepository(ddb, cfg.SettingsTable)

	var checkout interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentMockEnabled(), payments.CheckoutURLs{
		Success:      cfg.CheckoutSuccessURL,
		Failure:      cfg.CheckoutFailureURL,
		Pending:      cfg.CheckoutPendingURL,
		Notification: cfg.MercadoPagoNotificationURL,
	}, logger)
	if err != nil {
		logger.Warn("[app][wiring] mercado pago gateway not configured, checkout disabled", zap.Error(err))
	} else {
		checkout = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(routeRepo, carrierRepo, settingsRepo, logger)
	h := handlerSet{
		quotes: handlers.NewQuoteHandler(quoteUseCase),
		routes: handlers.NewFreightRouteHandler(
			usecase.NewFreightRouteUseCase(routeRepo, carrierRepo, settingsRepo, auditRepo, logger),
			usecase.NewRateImportUseCase(routeRepo, carrierRepo, settingsRepo, spreadsheet.NewRateSheetReader(), auditRepo, logger),
		),
		freights: handlers.NewFreightHandler(usecase.NewFreightUseCase(freightRepo, carrierRepo, quoteUseCase, checkout, auditRepo, logger), logger),
		repasses: handlers.NewRepasseHandler(usecase.NewRepasseUseCase(freightRepo, auditRepo, logger)),
		carriers: handlers.NewCarrierHandler(usecase.NewCarrierUseCase(carrierRepo, newTaxIDValidator(ctx, cfg, logger), cfg.AllowedCNAEs(), auditRepo, logger)),
		audit:    handlers.NewAuditHandler(usecase.NewAuditUseCase(auditRepo)),
		settings: handlers.NewSettingsHandler(usecase.NewSettingsUseCase(settingsRepo, auditRepo, logger)),
	}

	tokens := identity.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer)
	resolveCarrier := func(ctx context.Context, userID string) (string, error) {
		c, err := carrierRepo.GetByOwnerUserID(ctx, userID)
		return c.ID, err
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas publicas
	addQuoteRoutes(v1, h.quotes)
	addWebhookRoutes(v1, h.freights)
	addBrandingRoutes(v1, h.settings)

	authed := v1.Group("", middleware.RequireAuth(tokens, resolveCarrier, logger))
	addCarrierRoutes(authed, h.carriers, h.routes)
	addFreightRouteRoutes(authed, h.routes)
	addFreightRoutes(authed, h.freights)
	addRepasseRoutes(authed, h.repasses)
	addAdminRoutes(authed, h.audit, h.settings)
	return nil
}

// newTaxIDValidator picks the CNPJ registry: the offline mock, or BrasilAPI
// behind a Redis cache when REDIS_ADDR is set.
func newTaxIDValidator(ctx context.Context, cfg *config.Config, logger *zap.Logger) interfaces.ITaxIDValidator {
	if cfg.TaxIDMockEnabled() {
		logger.Warn("[app][wiring] TAXID_MOCK enabled, CNPJ registry lookups are simulated")
		return taxid.MockClient{}
	}
	registry := taxid.NewBrasilAPIClient(cfg.TaxIDBaseURL, cfg.TaxIDTimeout, logger)
	if cfg.RedisAddr == "" {
		return registry
	}
	redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("[app][wiring] redis unreachable, tax id cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return registry
	}
	return taxid.NewCachedClient(registry, redisCache, cfg.TaxIDCacheTTL, logger)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Metrics())
}
