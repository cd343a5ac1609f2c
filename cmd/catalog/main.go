package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stockwise/ims/application/auth"
	catalogapp "github.com/stockwise/ims/application/catalog"
	"github.com/stockwise/ims/cmd/config"
	redisclient "github.com/stockwise/ims/cmd/redis"
	_ "github.com/stockwise/ims/docs"
	categoryRepo "github.com/stockwise/ims/repository/category"
	productRepo "github.com/stockwise/ims/repository/product"
	redisRepo "github.com/stockwise/ims/repository/redis"
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

	logger.Info("Starting catalog service", zap.String("env", cfg.Environment))

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

	ProductRepo := productRepo.NewProductRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	RedisRepo := redisRepo.NewRepository()

	inventoryClient := svcclient.NewInventoryClient(cfg.Services.InventoryURL, cfg.Services.InternalAPIKey, cfg.Services.HTTPTimeout)

	CatalogApp := catalogapp.NewCatalogApp(cfg, ProductRepo, CategoryRepo, inventoryClient)
	validator := auth.NewValidator(cfg, RedisRepo)

	httpTransport := transport.NewCatalogTransport(CatalogApp, validator, cfg.Services.InternalAPIKey)

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
