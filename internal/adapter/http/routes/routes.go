package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "monopay/docs" // swag-generated
	"monopay/internal/adapter/http/handlers"
	"monopay/internal/adapter/persistence/repository"
	"monopay/internal/infrastructure/config"
	"monopay/internal/infrastructure/database"
	"monopay/internal/infrastructure/logging"
	"monopay/internal/infrastructure/payments"
	"monopay/internal/infrastructure/qrgenerator"
	"monopay/internal/usecase"
	"monopay/internal/usecase/interfaces"
	"monopay/pkg/monopay"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups what NewRouter mounts under /v1.
type Handlers struct {
	Invoice  *handlers.InvoiceHandler
	Merchant *handlers.MerchantHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := NewRouter(buildHandlers(ctx, cfg, logger), logger)
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("[http] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[http] shutdown failed", zap.Error(err))
	}
}

// NewRouter wires middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMerchantRoutes(v1, h.Merchant)
	addInvoiceRoutes(v1, h.Invoice)
	return router
}

// buildHandlers degrades instead of failing: without a token the gateway routes answer 503,
// without DynamoDB the journal is skipped.
func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	var gateway interfaces.IAcquiringGateway
	client, err := monopay.New(cfg.Mono.Token, cfg.Mono.ClientOptions(logger)...)
	if err != nil {
		logger.Warn("[payment][gateway] monobank gateway not configured", zap.Error(err))
	} else if gw, err := payments.NewMonobankGateway(client, logger); err != nil {
		logger.Warn("[payment][gateway] monobank gateway not configured", zap.Error(err))
	} else {
		gateway = gw
	}

	var journal interfaces.IGatewayOperationRepository
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err == nil {
		err = database.PingTable(ctx, ddb, cfg.OperationsTable, database.DefaultPingTimeout)
	}
	if err != nil {
		logger.Warn("[payment][journal] dynamodb unavailable; journal disabled", zap.Error(err))
	} else {
		journal = repository.NewGatewayOperationDynamoRepository(ddb, cfg.OperationsTable)
	}

	qr := qrgenerator.NewGenerator(qrgenerator.DefaultSize)

	invoiceUseCase := usecase.NewInvoiceUseCase(gateway, journal, qr, logger)
	merchantUseCase := usecase.NewMerchantUseCase(gateway, journal, logger)

	return Handlers{
		Invoice:  handlers.NewInvoiceHandler(invoiceUseCase, logger),
		Merchant: handlers.NewMerchantHandler(merchantUseCase, logger),
	}
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(logging.GinMiddleware(logging.MiddlewareConfig{Logger: logger, SkipPaths: []string{"/v1/ping"}}))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context(), logger).Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
