package main

import (
	"log"
	"time"

	"jadlog-rates/internal/core/cache"
	"jadlog-rates/internal/core/config"
	"jadlog-rates/internal/core/logger"
	"jadlog-rates/internal/core/server"
	"jadlog-rates/internal/features/quotes/adapters"
	quotehandler "jadlog-rates/internal/features/quotes/handler"
	"jadlog-rates/internal/features/quotes/ports"
	quoteservice "jadlog-rates/internal/features/quotes/service"

	"go.uber.org/zap"
)

// @title Jadlog Rates API
// @version 1.0
// @description Calculates Jadlog shipping quotes for e-commerce carts, applying merchant shipping rules.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	jadlogAdapter := adapters.NewJadlogAdapter(
		cfg.Jadlog.APIURL,
		time.Duration(cfg.Jadlog.TimeoutSeconds)*time.Second,
	)

	var provider ports.RateProvider = jadlogAdapter
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()

		provider = adapters.NewCachedRateProvider(
			jadlogAdapter,
			redisCache,
			time.Duration(cfg.Cache.RateTTLSeconds)*time.Second,
		)
		l.Info("Rate cache enabled",
			zap.Int("ttl_seconds", cfg.Cache.RateTTLSeconds),
		)
	}

	quoteSvc := quoteservice.NewQuoteService(provider)
	quoteHdl := quotehandler.NewQuoteHandler(quoteSvc)

	srv := server.New(cfg)

	srv.App.Post("/calculate-shipping", quoteHdl.CalculateShipping)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
