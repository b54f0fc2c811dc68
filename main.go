package main

import (
	"context"
	"log"

	"paystack-client/config"
	"paystack-client/internal/api"
	"paystack-client/internal/session"
	"paystack-client/pkg/logger"
	"paystack-client/pkg/paystack"

	"go.uber.org/zap"
)

// @title paystack-client checkout API
// @version 1.0
// @description Demo checkout and transfer server built on the paystack client.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	client, err := paystack.NewClient(cfg.PaystackConfig(),
		paystack.WithLogger(logger.Log.Named("paystack")),
		paystack.WithTimeout(cfg.HTTPTimeout),
	)
	if err != nil {
		logger.Log.Fatal("failed to create paystack client", zap.Error(err))
	}

	sessions, err := newSessionStore(cfg)
	if err != nil {
		logger.Log.Fatal("failed to create session store", zap.Error(err))
	}

	router := api.NewRouter(cfg, client, sessions, logger.Log)

	logger.Log.Info("starting server", zap.String("addr", cfg.ServerAddr), zap.String("gateway", client.BaseURL()))
	if err := router.Run(cfg.ServerAddr); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.SessionBackend != "redis" {
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}
	rdb, err := session.ConnectRedis(context.Background(), cfg.RedisFullAddr(), cfg.RedisPassword)
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(rdb, cfg.SessionTTL), nil
}
