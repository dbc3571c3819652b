package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Cari-app/cari-quizzies-sub001/internal/cache"
	"github.com/Cari-app/cari-quizzies-sub001/internal/config"
	"github.com/Cari-app/cari-quizzies-sub001/internal/events"
	"github.com/Cari-app/cari-quizzies-sub001/internal/handlers"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories/postgres"
	"github.com/Cari-app/cari-quizzies-sub001/internal/services"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
	"github.com/Cari-app/cari-quizzies-sub001/pkg"
)

const sessionTTL = 24 * time.Hour

// NewServeCmd builds the CLI subcommand to start the HTTP server.
func NewServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz flow server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *port)
		},
	}
}

func runServer(ctx context.Context, portFlag string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	var logger utils.Logger
	if cfg.IsDevelopment() {
		logger = utils.NewDevelopmentLogger()
	} else {
		logger = utils.NewDefaultLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	cacheService := cache.NewRedisCache(redisClient, slogger)
	sessionStore := cache.NewRedisSessionStore(cacheService, sessionTTL)

	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.WebhookTopic,
			Logger:       slogger,
		})
		if err != nil {
			return fmt.Errorf("failed to create event publisher: %w", err)
		}
	} else {
		logger.Warn("No Kafka brokers configured, webhook events will not leave the process")
		publisher = events.NewMockEventPublisher(slogger)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	validator := utils.NewValidator()
	serviceManager := services.NewServiceManager(repo, sessionStore, publisher, slogger, validator)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
