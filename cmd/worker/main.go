package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/thirdparty/rabbitmq"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

// The worker drains the order-expiration queue and runs the periodic
// low-stock check against the inventory service.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting worker", zap.String("env", cfg.Environment))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Services.OrderURL, cfg.Services.InternalAPIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("order expiration consumer running")

	go runLowStockTicker(ctx, cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("worker shutting down")
}

func runLowStockTicker(ctx context.Context, cfg *config.Config) {
	interval := cfg.Services.LowStockCheckInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("low stock check scheduled", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := triggerLowStockCheck(cfg); err != nil {
				logger.Error("low stock check failed", zap.String("error", err.Error()))
			}
		}
	}
}

func triggerLowStockCheck(cfg *config.Config) error {
	url := cfg.Services.InventoryURL + "/internal/v1/alerts/check"

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Services.InternalAPIKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("inventory service replied %d: %s", resp.StatusCode, body)
	}
	return nil
}
