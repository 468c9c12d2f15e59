package config

import (
	"payment-gateway/src/internal/delivery/http"
	"payment-gateway/src/internal/delivery/http/middleware"
	"payment-gateway/src/internal/delivery/http/route"
	"payment-gateway/src/internal/gateway/messaging"
	"payment-gateway/src/internal/ledger"
	"payment-gateway/src/internal/repository"
	"payment-gateway/src/internal/usecase"
	"payment-gateway/src/pkg/kafka"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Store      repository.Store
	App        *fiber.App
	Log        log.Log
	Validate   *validator.Validate
	Config     *viper.Viper
	Producer   kafka.Producer
	Redis      redis.UniversalClient
	Authorizer ledger.Authorizer
}

func Bootstrap(config *BootstrapConfig) {
	// setup core
	tokens := token.NewManager(config.Config.GetString("jwt.secret"), config.Config.GetString("app.name"), config.Config.GetDuration("jwt.ttl"))
	ledgerProducer := messaging.NewLedgerProducer(config.Producer, NewTopics(config.Config), config.Log)
	chargeManager := ledger.NewChargeManager(config.Store, config.Log)
	settlementEngine := ledger.NewSettlementEngine(config.Store, config.Authorizer, config.Log)

	// setup use cases
	userUseCase := usecase.NewUserUseCase(config.Log, config.Validate, config.Store, tokens)
	chargeUseCase := usecase.NewChargeUseCase(config.Log, config.Validate, config.Store, chargeManager, ledgerProducer)
	paymentUseCase := usecase.NewPaymentUseCase(config.Log, config.Validate, config.Store, settlementEngine, ledgerProducer)

	// setup controller
	userController := http.NewUserController(userUseCase, config.Log)
	chargeController := http.NewChargeController(chargeUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(tokens, userUseCase)
	var idempotencyStore middleware.IdempotencyStore
	if config.Redis != nil {
		idempotencyStore = repository.NewIdempotencyRepository(config.Redis, config.Config.GetDuration("idempotency.ttl"))
	}

	routeConfig := route.RouteConfig{
		App:                   config.App,
		UserController:        userController,
		ChargeController:      chargeController,
		PaymentController:     paymentController,
		LoggerMiddleware:      middleware.NewLogger(config.Log),
		AuthMiddleware:        authMiddleware,
		IdempotencyMiddleware: middleware.Idempotency(idempotencyStore, config.Log),
	}
	routeConfig.Setup()
}
