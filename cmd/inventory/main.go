package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stockwise/ims/application/auth"
	inventoryapp "github.com/stockwise/ims/application/inventory"
	"github.com/stockwise/ims/cmd/config"
	redisclient "github.com/stockwise/ims/cmd/redis"
	_ "github.com/stockwise/ims/docs"
	alertRepo "github.com/stockwise/ims/repository/alert"
	inventoryRepo "github.com/stockwise/ims/repository/inventory"
	redisRepo "github.com/stockwise/ims/repository/redis"
	txRepo "github.com/stockwise/ims/repository/tx"
	"github.com/stockwise/ims/thirdparty/rabbitmq"
	"github.com/stockwise/ims/thirdparty/svcclient"
	"github.com/stockwise/ims/transport"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting inventory service", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("postgres", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	TxRepo := txRepo.NewTxRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	MovementRepo := inventoryRepo.NewMovementRepository(db)
	AlertRepo := alertRepo.NewAlertRepository(db)
	RedisRepo := redisRepo.NewRepository()

	catalogClient := svcclient.NewCatalogClient(cfg.Services.CatalogURL, cfg.Services.InternalAPIKey, cfg.Services.HTTPTimeout, RedisRepo)

	InventoryApp := inventoryapp.NewInventoryApp(cfg, TxRepo, InventoryRepo, MovementRepo, AlertRepo, catalogClient, publisher)
	validator := auth.NewValidator(cfg, RedisRepo)

	httpTransport := transport.NewInventoryTransport(InventoryApp, validator, cfg.Services.InternalAPIKey)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
