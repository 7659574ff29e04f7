package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"syscall"
	"time"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/in/http/apidoc"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/rpc"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	services, err := configs.Services()
	if err != nil {
		log.Fatalf("Invalid SERVICE: %v", err)
	}

	book, err := configs.AddressBook()
	if err != nil {
		log.Fatalf("Error loading address book: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB, services...); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	doc, err := apidoc.Load()
	if err != nil {
		log.Fatalf("Error loading API contract: %v", err)
	}

	client := rpc.NewClient(rpc.NewStaticResolver(book), rpc.WithLogger(logger))
	app, err := cmd.NewCompositionRoot(configs, gormDB, client, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	servers := make([]*echo.Echo, 0, len(services))
	for _, service := range services {
		server, serverErr := app.NewServer(service)
		if serverErr != nil {
			log.Fatalf("Error building %s server: %v", service, serverErr)
		}
		e := server.Echo(doc.Validator())
		servers = append(servers, e)
		startWebServer(ctx, stop, e, service, book[service].Port, logger)
	}

	jobManager := jobs.NewJobManager()
	if configs.DispatchEnabled && slices.Contains(services, rpc.Order) {
		jobManager = jobs.NewJobManager(app.CreateDispatchJob())
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, e := range servers {
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("Server shutdown failed", "error", shutdownErr)
		}
	}

	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		Service:          os.Getenv("SERVICE"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		AddressBookPath:  os.Getenv("ADDRESS_BOOK"),
		IdentityAddr:     os.Getenv("IDENTITY_ADDR"),
		CatalogAddr:      os.Getenv("CATALOG_ADDR"),
		OrderAddr:        os.Getenv("ORDER_ADDR"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenTTL:         durationVariable("TOKEN_TTL", 24*time.Hour),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		DispatchEnabled:  boolVariable("DISPATCH_ENABLED"),
		DispatchSchedule: os.Getenv("DISPATCH_SCHEDULE"),
	}
	return config
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func boolVariable(key string) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return b
}

func startWebServer(
	ctx context.Context,
	stop context.CancelFunc,
	e *echo.Echo,
	service rpc.Service,
	port int,
	logger *slog.Logger,
) {
	addr := fmt.Sprintf("0.0.0.0:%d", port)
	go func() {
		logger.InfoContext(ctx, "Message server listening", "service", string(service), "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "Message server failed", "service", string(service), "error", err)
			stop()
		}
	}()
}
