package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"payment-gateway/src/internal/config"
	"payment-gateway/src/pkg/log"
)

func main() {

	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	logger := log.GetLogger()
	if viperConfig.GetString("jwt.secret") == "" {
		logger.Error("main", "jwt.secret must be configured", "main", "")
		os.Exit(1)
	}

	store, closeStore := config.NewStore(viperConfig, logger)
	redisClient := config.NewRedis(viperConfig, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	config.Bootstrap(&config.BootstrapConfig{
		Store:      store,
		App:        app,
		Log:        logger,
		Validate:   validate,
		Config:     viperConfig,
		Producer:   producer,
		Redis:      redisClient,
		Authorizer: config.NewAuthorizer(viperConfig, logger),
	})

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("main", "Server payment-gateway is shutting down...", "graceful", "")

		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		if producer != nil {
			if err := producer.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("Error closing kafka producer: %v", err), "graceful", "")
			}
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("Error closing redis: %v", err), "graceful", "")
			}
		}
		if err := closeStore(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		os.Exit(1)
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
