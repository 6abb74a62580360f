package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/tajrubatahsin16/LanguageShala-server/config"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/enrollment"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/payments"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/routes"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	config.ConnectDB(cfg.DatabaseURL)
	config.ConnectRedis(cfg.RedisAddr)

	st := store.NewGormStore(config.DB)
	gateway := payments.NewStripeGateway(cfg.PaymentSecretKey)
	coordinator := enrollment.NewCoordinator(st, st, gateway)

	r := gin.Default()
	routes.SetupRoutes(r, routes.Deps{
		TokenSecret: []byte(cfg.AccessTokenKey),
		Users:       st,
		Classes:     st,
		Selections:  st,
		Payments:    st,
		Coordinator: coordinator,
	})

	slog.Info("LanguageShala is running", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
