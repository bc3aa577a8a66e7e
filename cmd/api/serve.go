package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"carteasy/internal/assistant"
	"carteasy/internal/auth"
	"carteasy/internal/cache"
	"carteasy/internal/checkout"
	"carteasy/internal/config"
	"carteasy/internal/database"
	"carteasy/internal/events"
	"carteasy/internal/logging"
	"carteasy/internal/models"
	"carteasy/internal/repository"
	"carteasy/internal/routes"
	"carteasy/internal/session"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if !cfg.EnvFileLoaded {
		logger.Info("no .env file found, using environment variables")
	}

	products, orders, closeDB, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	sessions, err := openSessionStore(cfg, logger)
	if err != nil {
		return err
	}
	defer sessions.Close()

	publisher := openPublisher(cfg, logger)
	defer publisher.Close()

	listing := cache.New[[]models.Product](cfg.ListingCacheTTL, time.Minute)
	listing.SetMaxEntries(cfg.ListingCacheSize)
	defer listing.Stop()

	// el asistente cuenta productos del catálogo cargado
	catalogProducts, err := products.FindAll(ctx)
	if err != nil {
		return err
	}

	router := routes.NewRouter(routes.Services{
		Products:     products,
		Orders:       orders,
		Sessions:     sessions,
		Auth:         auth.NewService(cfg.AuthDelay, logger),
		Assistant:    assistant.NewService(catalogProducts, cfg.AssistantDelay, logger),
		Checkout:     checkout.NewService(orders, publisher, cfg.PaymentDelay, logger),
		ListingCache: listing,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openRepositories usa MongoDB si MONGO_URI está definido; si no, memoria
func openRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.ProductRepository, repository.OrderRepository, func(), error) {
	if cfg.MongoURI == "" {
		logger.Info("MONGO_URI not set, using in-memory catalog and orders")
		return repository.NewMemoryProductRepository(), repository.NewMemoryOrderRepository(), func() {}, nil
	}

	client, err := database.Connect(ctx, cfg.MongoURI, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	db := client.Database(cfg.MongoDB)

	products := repository.NewMongoProductRepository(db.Collection("products"))
	if err := seedIfEmpty(ctx, products, logger); err != nil {
		database.Disconnect(client, logger)
		return nil, nil, nil, err
	}

	orders := repository.NewMongoOrderRepository(db.Collection("orders"))
	return products, orders, func() { database.Disconnect(client, logger) }, nil
}

func seedIfEmpty(ctx context.Context, products *repository.MongoProductRepository, logger *zap.Logger) error {
	existing, err := products.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return seedCatalog(ctx, products, logger)
}

func openSessionStore(cfg *config.Config, logger *zap.Logger) (session.Store, error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, using in-memory sessions")
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}
	return session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL, logger)
}

// openPublisher cae al publisher de logs si RabbitMQ no está disponible
func openPublisher(cfg *config.Config, logger *zap.Logger) events.Publisher {
	if cfg.AMQPURL == "" {
		return events.NewLogPublisher(logger)
	}
	pub, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order events will only be logged", zap.Error(err))
		return events.NewLogPublisher(logger)
	}
	return pub
}
