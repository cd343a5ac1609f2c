package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stockwise/ims/application/auth"
	userapp "github.com/stockwise/ims/application/user"
	"github.com/stockwise/ims/cmd/config"
	redisclient "github.com/stockwise/ims/cmd/redis"
	_ "github.com/stockwise/ims/docs"
	redisRepo "github.com/stockwise/ims/repository/redis"
	userRepo "github.com/stockwise/ims/repository/user"
	"github.com/stockwise/ims/transport"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

// @title StockWise IMS API
// @version 1.0
// @description Inventory management system API documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting user service", zap.String("env", cfg.Environment))

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

	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()

	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	validator := auth.NewValidator(cfg, RedisRepo)

	httpTransport := transport.NewUserTransport(UserApp, validator)

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
