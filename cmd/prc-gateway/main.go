package main

import (
	"RobloxHelper_Service/internal/prc-gateway/api/handler"
	"RobloxHelper_Service/internal/prc-gateway/api/routes"
	"RobloxHelper_Service/internal/prc-gateway/config"
	"RobloxHelper_Service/internal/prc-gateway/consumer"
	"RobloxHelper_Service/internal/prc-gateway/model"
	"RobloxHelper_Service/internal/prc-gateway/repository"
	"RobloxHelper_Service/internal/prc-gateway/service"
	"RobloxHelper_Service/pkg/infra"
	"RobloxHelper_Service/pkg/logger"
	"RobloxHelper_Service/pkg/middleware"
	"RobloxHelper_Service/pkg/prc"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openDatabase(appConfig config.AppConfig) (*gorm.DB, error) {
	switch appConfig.Database.Driver {
	case config.DatabaseDriverPostgres:
		return infra.NewPostgresConnection(infra.PostgresConfig{
			Host:     appConfig.Postgres.Host,
			Port:     appConfig.Postgres.Port,
			User:     appConfig.Postgres.User,
			Password: appConfig.Postgres.Password,
			DBName:   appConfig.Postgres.DBName,
			SSLMode:  appConfig.Postgres.SSLMode,
		})
	case config.DatabaseDriverSQLite:
		return infra.NewSQLiteConnection(appConfig.Database.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown database driver %q", appConfig.Database.Driver)
	}
}

func consumerGroupID(appConfig config.AppConfig) string {
	if appConfig.Kafka.ConsumerGroupID != "" {
		return appConfig.Kafka.ConsumerGroupID
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "local"
	}
	return "prc-gateway-" + hostname
}

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "prc-gateway"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up key store
	db, err := openDatabase(appConfig)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.String("driver", appConfig.Database.Driver), zap.Error(err))
	} else {
		zapLogger.Info("connected to database successfully", zap.String("driver", appConfig.Database.Driver))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	if err = db.AutoMigrate(&model.ServerKey{}); err != nil {
		zapLogger.Fatal("failed to migrate key store", zap.Error(err))
	}

	var keyRepo repository.ServerKeyRepository = repository.NewServerKeyRepository(db)
	var evicter repository.KeyEvicter
	if appConfig.Redis.Enabled {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		zapLogger.Info("connected to redis successfully")
		defer redisClient.Close()
		cachedRepo := repository.NewCachedServerKeyRepository(redisClient, keyRepo, appConfig.Redis.KeyTTL)
		keyRepo = cachedRepo
		evicter = cachedRepo
	}

	// set up prc client
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := prc.NewMetricsCollector(registry)
	keyCache := prc.NewKeyCache(keyRepo, metrics)
	client := prc.NewServerClient(appConfig.PRC.BaseURL, keyCache,
		prc.WithGlobalKey(appConfig.PRC.GlobalAPIKey),
		prc.WithRequestTimeout(appConfig.PRC.RequestTimeout),
		prc.WithLogger(zapLogger),
		prc.WithMetrics(metrics),
	)

	// set up key events
	var events infra.KafkaWriter
	var keyEventConsumer consumer.KeyEventConsumer
	if appConfig.Kafka.Enabled {
		writer := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.KeyEventsTopic)
		defer writer.Close()
		events = writer
		reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, consumerGroupID(appConfig), appConfig.Kafka.KeyEventsTopic)
		keyEventConsumer = consumer.NewKeyEventConsumer(reader, keyCache, evicter, zapLogger)
		keyEventConsumer.Start()
		zapLogger.Info("key event consumer started", zap.String("topic", appConfig.Kafka.KeyEventsTopic))
	}

	// set up dependencies
	linkService := service.NewLinkService(keyRepo, keyCache, events, zapLogger)
	handlerLogger := handler.NewLogger(zapLogger)
	serverHandler := handler.NewServerHandler(client, handlerLogger)
	linkHandler := handler.NewLinkHandler(linkService, handlerLogger)

	m := middleware.NewAuthMiddleware()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	routes.SetUpServerRoutes(r, serverHandler, linkHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	if keyEventConsumer != nil {
		keyEventConsumer.Stop()
	}
	if err = client.Close(); err != nil {
		zapLogger.Error("failed to close prc client", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
