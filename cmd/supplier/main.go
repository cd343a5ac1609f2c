package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stockwise/ims/application/auth"
	supplierapp "github.com/stockwise/ims/application/supplier"
	"github.com/stockwise/ims/cmd/config"
	redisclient "github.com/stockwise/ims/cmd/redis"
	_ "github.com/stockwise/ims/docs"
	psRepo "github.com/stockwise/ims/repository/productsupplier"
	poRepo "github.com/stockwise/ims/repository/purchaseorder"
	redisRepo "github.com/stockwise/ims/repository/redis"
	supplierRepo "github.com/stockwise/ims/repository/supplier"
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

	logger.Info("Starting supplier service", zap.String("env", cfg.Environment))

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

	SupplierRepo := supplierRepo.NewSupplierRepository(db)
	PSRepo := psRepo.NewProductSupplierRepository(db)
	PORepo := poRepo.NewPurchaseOrderRepository(db)
	RedisRepo := redisRepo.NewRepository()

	catalogClient := svcclient.NewCatalogClient(cfg.Services.CatalogURL, cfg.Services.InternalAPIKey, cfg.Services.HTTPTimeout, RedisRepo)
	inventoryClient := svcclient.NewInventoryClient(cfg.Services.InventoryURL, cfg.Services.InternalAPIKey, cfg.Services.HTTPTimeout)

	SupplierApp := supplierapp.NewSupplierApp(cfg, SupplierRepo, PSRepo, PORepo, catalogClient, inventoryClient)
	validator := auth.NewValidator(cfg, RedisRepo)

	httpTransport := transport.NewSupplierTransport(SupplierApp, validator)

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
