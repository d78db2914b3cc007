package main

import (
	"context"
	"log"

	_ "rotaclick/docs"
	"rotaclick/internal/adapter/http/routes"
	"rotaclick/internal/config"
	"rotaclick/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           RotaClick API
// @version         1.0
// @description     Freight brokerage: quotes, checkout, carrier payouts and onboarding, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := routes.Run(context.Background(), cfg, zl); err != nil {
		zl.Fatal("[app][main] server stopped", zap.Error(err))
	}
}
