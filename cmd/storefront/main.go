package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/raghu62-rp/OSM-main/internal/catalog"
	"github.com/raghu62-rp/OSM-main/internal/config"
	"github.com/raghu62-rp/OSM-main/internal/httpapi"
	"github.com/raghu62-rp/OSM-main/internal/orders"
	"github.com/raghu62-rp/OSM-main/internal/session"
	"github.com/raghu62-rp/OSM-main/internal/store"
	"github.com/raghu62-rp/OSM-main/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("storefront", cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Client state lives in mongo when configured, redis as the lighter
	// alternative, and in process memory for local development.
	var backing store.Store
	switch {
	case cfg.MongoURI != "":
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo")
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}()
		backing = store.NewMongoStore(mongoClient.Database(cfg.MongoDatabase))
		log.Info().Str("database", cfg.MongoDatabase).Msg("using mongo client state store")
	case cfg.RedisAddr != "":
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		backing = store.NewRedisStore(redisClient)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis client state store")
	default:
		backing = store.NewMemoryStore()
		log.Info().Msg("using in-memory client state store")
	}

	catalogClient := catalog.NewClient(cfg.CatalogURL, cfg.ClientTimeout, log)
	sync := catalog.NewSync(catalogClient, log)

	poller := catalog.NewPoller(catalogClient, cfg.HealthInterval, log)
	go poller.Run(ctx)

	orderClient := orders.NewClient(cfg.OrderStoreURL, cfg.ClientTimeout, log)
	sessions := session.NewManager(backing, orderClient, cfg.PaymentDelay, log)

	router := httpapi.NewRouter(sessions, sync, poller, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
