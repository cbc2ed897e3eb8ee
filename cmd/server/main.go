package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/menaget/ordermgmt/internal/cache"
	"github.com/menaget/ordermgmt/internal/config"
	"github.com/menaget/ordermgmt/internal/logger"
	"github.com/menaget/ordermgmt/internal/metrics"
	"github.com/menaget/ordermgmt/internal/repository"
	"github.com/menaget/ordermgmt/internal/server"
	"github.com/menaget/ordermgmt/internal/service"
)

const connectTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet, config failures go straight to stderr.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Logger.Level)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	client, err := repository.Connect(ctx, cfg.Mongo.URI)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}

	db := client.Database(cfg.Mongo.Database)

	ctx, cancel = context.WithTimeout(context.Background(), connectTimeout)
	err = repository.EnsureIndexes(ctx, db)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	productCache, err := cache.New(cache.Config{
		Capacity:           cfg.Cache.MaxEntries,
		NumShards:          cache.DefaultConfig().NumShards,
		TTL:                cfg.Cache.TTL,
		EvictionPercentage: cache.DefaultConfig().EvictionPercentage,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build cache")
	}

	userRepo := repository.NewUser(db)
	productRepo := repository.NewProduct(db)
	orderRepo := repository.NewOrder(db)

	m := metrics.New()

	handlers := server.Handlers{
		Users:    server.NewUserHandler(service.NewUser(userRepo, orderRepo, productRepo)),
		Products: server.NewProductHandler(service.NewProduct(productRepo, productCache, m)),
		Orders:   server.NewOrderHandler(service.NewOrder(orderRepo, userRepo, productRepo)),
	}

	router := server.NewRouter(log, m, cfg.RateLimit, handlers)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel = context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}

	log.Info().Msg("stopped")
}
