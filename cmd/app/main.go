package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	postgres_adapter "storefront/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := openDatabase(configs)
	redisClient := openRedis(ctx, configs)
	defer func() { _ = redisClient.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	if configs.SeedFile != "" {
		if err := app.CreateSeedLoader().LoadFile(ctx, configs.SeedFile); err != nil {
			log.Fatalf("Error applying seed file: %v", err)
		}
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using the environment: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func openDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres_adapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func openRedis(ctx context.Context, configs cmd.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	return client
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), httpin.RouterConfig{
		AdminJWTSecret: configs.AdminJWTSecret,
	}, logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()
	logger.Info("Storefront started", "port", configs.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
	logger.Info("Storefront stopped")
}
