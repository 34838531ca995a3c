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

	"orderservice/cmd"
	"orderservice/internal/adapters/out/postgres/orderrepo"
	"orderservice/internal/adapters/out/postgres/outboxrepo"
	"orderservice/internal/adapters/out/postgres/partnerrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)

	root := cmd.NewCompositionRoot(configs, db, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	consumer := root.CreateStatusEventConsumer()
	go func() {
		if err := consumer.Run(ctx); err != nil {
			logger.Error("status event consumer stopped", slog.Any("error", err))
		}
	}()

	e := newWebServer(&root)
	go func() {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server stopped", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown failed", slog.Any("error", err))
	}

	jobManager.StopAll()
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:    goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderStatusTopic: goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		KafkaOrderStatusDLQ:   goDotEnvVariable("KAFKA_ORDER_STATUS_DLQ_TOPIC"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&partnerrepo.PartnerDTO{},
		&outboxrepo.MessageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func newWebServer(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateHTTPServer().RegisterRoutes(e)

	return e
}
