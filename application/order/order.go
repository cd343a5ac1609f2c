package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	orderrepo "github.com/stockwise/ims/repository/order"
	txrepo "github.com/stockwise/ims/repository/tx"
	"github.com/stockwise/ims/thirdparty/rabbitmq"
	"github.com/stockwise/ims/thirdparty/svcclient"
	"github.com/stockwise/ims/utils/errors"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderDetail, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID uint64) error
	ExpireOrder(ctx context.Context, orderID uint64) error
	DeleteOrder(ctx context.Context, orderID uint64) error
}

// ShortageError carries every line an order could not reserve, so the caller
// sees the full picture instead of the first failing item.
type ShortageError struct {
	Shortages []model.StockShortage
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("insufficient stock for %d item(s)", len(e.Shortages))
}

type orderAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	orderRepo       orderrepo.OrderRepository
	catalogClient   svcclient.CatalogClient
	inventoryClient svcclient.InventoryClient
	publisher       *rabbitmq.Publisher
}

func NewOrderApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	orderRepo orderrepo.OrderRepository,
	catalogClient svcclient.CatalogClient,
	inventoryClient svcclient.InventoryClient,
	publisher *rabbitmq.Publisher,
) OrderApp {
	return &orderAppImpl{
		config:          config,
		txRepo:          txRepo,
		orderRepo:       orderRepo,
		catalogClient:   catalogClient,
		inventoryClient: inventoryClient,
		publisher:       publisher,
	}
}

// CreateOrder validates products against the catalog, reserves stock for every
// line and writes the order. Reservations already placed are released when a
// later line fails, so a rejected order holds nothing.
func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	products, err := s.lookupProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// advisory pre-check so a doomed order reports every short line at once
	if err := s.checkAvailability(ctx, req.Items, products); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	total := decimal.Zero
	orderItems := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		p := products[item.ProductID]
		subtotal := p.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		total = total.Add(subtotal)
		orderItems = append(orderItems, model.OrderItem{
			ProductID: item.ProductID,
			SKU:       p.SKU,
			Quantity:  item.Quantity,
			UnitPrice: p.UnitPrice,
			Subtotal:  subtotal,
		})
	}

	expiresAt := time.Now().Add(s.config.Order.OrderExpiration)
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		CustomerID:      req.CustomerID,
		Status:          constant.OrderStatusPending,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ExpiresAt:       expiresAt,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, orderItems); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// reserve per line against the inventory service; compensate on failure
	reserved := make([]model.OrderItem, 0, len(orderItems))
	for _, item := range orderItems {
		err := s.inventoryClient.ReserveStock(ctx, &model.StockOpRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			OrderID:   &orderID,
		})
		if err != nil {
			s.releaseReserved(ctx, orderID, reserved)
			if svcclient.IsInsufficientStock(err) {
				logger.Info("[CreateOrder] reservation rejected",
					zap.Uint64("order_id", orderID),
					zap.Uint64("product_id", item.ProductID))
				return nil, s.shortageFor(ctx, item)
			}
			logger.Error("[CreateOrder] reserve stock", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrDependencyUnavailable)
		}
		reserved = append(reserved, item)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		s.releaseReserved(ctx, orderID, reserved)
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderExpirationMessage{
			OrderID:    orderID,
			CustomerID: req.CustomerID,
			ExpiresAt:  expiresAt,
		}
		if err := s.publisher.PublishOrderExpiration(msg); err != nil {
			logger.Error("[CreateOrder] publish order expiration", zap.String("error", err.Error()))
		}
	}

	return &model.OrderResponse{
		OrderID:     orderID,
		Status:      string(constant.OrderStatusPending),
		TotalAmount: total,
		ExpiresAt:   expiresAt,
	}, nil
}

// lookupProducts resolves order lines against the catalog. Product validation
// is fail-closed: no catalog, no order.
func (s *orderAppImpl) lookupProducts(ctx context.Context, items []model.OrderItemRequest) (map[uint64]svcclient.ProductInfo, error) {
	ids := make([]uint64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.catalogClient.GetProductsBatch(ctx, ids)
	if err != nil {
		logger.Error("[CreateOrder] catalog lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDependencyUnavailable)
	}

	byID := make(map[uint64]svcclient.ProductInfo, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if !p.IsActive {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	return byID, nil
}

func (s *orderAppImpl) checkAvailability(ctx context.Context, items []model.OrderItemRequest, products map[uint64]svcclient.ProductInfo) error {
	checks := make([]model.StockCheckItem, 0, len(items))
	for _, it := range items {
		checks = append(checks, model.StockCheckItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	results, err := s.inventoryClient.BulkStockCheck(ctx, checks)
	if err != nil {
		logger.Error("[CreateOrder] stock check", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDependencyUnavailable)
	}

	shortages := make([]model.StockShortage, 0)
	for _, r := range results {
		if r.Fulfilled {
			continue
		}
		sku := r.SKU
		if sku == "" {
			sku = products[r.ProductID].SKU
		}
		shortages = append(shortages, model.StockShortage{
			ProductID: r.ProductID,
			SKU:       sku,
			Requested: r.Requested,
			Available: r.Available,
		})
	}
	if len(shortages) > 0 {
		return &ShortageError{Shortages: shortages}
	}
	return nil
}

// shortageFor reports a reservation rejected after the advisory pre-check
// passed, so the caller sees the same per-SKU shape on both rejection paths.
// Availability is re-read best effort.
func (s *orderAppImpl) shortageFor(ctx context.Context, item model.OrderItem) error {
	shortage := model.StockShortage{
		ProductID: item.ProductID,
		SKU:       item.SKU,
		Requested: item.Quantity,
	}
	results, err := s.inventoryClient.BulkStockCheck(ctx, []model.StockCheckItem{
		{ProductID: item.ProductID, Quantity: item.Quantity},
	})
	if err == nil && len(results) == 1 {
		shortage.Available = results[0].Available
	}
	return &ShortageError{Shortages: []model.StockShortage{shortage}}
}

func (s *orderAppImpl) releaseReserved(ctx context.Context, orderID uint64, reserved []model.OrderItem) {
	for _, item := range reserved {
		err := s.inventoryClient.ReleaseStock(ctx, &model.StockOpRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			OrderID:   &orderID,
		})
		if err != nil {
			logger.Error("[CreateOrder] release compensation failed",
				zap.Uint64("order_id", orderID),
				zap.Uint64("product_id", item.ProductID),
				zap.String("error", err.Error()))
		}
	}
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	detail, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return detail, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int64, error) {
	items, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, 0, errors.SetCustomError(constant.ErrInternal)
	}
	return items, total, nil
}

// UpdateStatus moves an order along pending -> processing -> shipped ->
// delivered. Shipping converts the reservations into deductions; cancellation
// goes through CancelOrder so holds are released.
func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) (*model.Order, error) {
	if status == constant.OrderStatusCancelled {
		if err := s.CancelOrder(ctx, orderID); err != nil {
			return nil, err
		}
		detail, err := s.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return &detail.Order, nil
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateStatus] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[UpdateStatus] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !constant.IsValidOrderTransition(order.Status, status) {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if status == constant.OrderStatusShipped {
		items, err := s.orderRepo.GetItemsTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[UpdateStatus] get items", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		for _, item := range items {
			err := s.inventoryClient.ConfirmDeduction(ctx, &model.StockOpRequest{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				OrderID:   &orderID,
			})
			if err != nil {
				logger.Error("[UpdateStatus] confirm deduction",
					zap.Uint64("order_id", orderID),
					zap.Uint64("product_id", item.ProductID),
					zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrDependencyUnavailable)
			}
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, status); err != nil {
		logger.Error("[UpdateStatus] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStatus] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = status
	return order, nil
}

// CancelOrder releases every reservation and marks the order cancelled. Only
// orders that still hold reservations (pending, processing) can be cancelled.
func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID uint64) error {
	return s.cancelWith(ctx, orderID, func(status constant.OrderStatus) bool {
		return constant.IsValidOrderTransition(status, constant.OrderStatusCancelled)
	})
}

// ExpireOrder is the reservation-window callback. It cancels only orders
// still pending; anything further along is left alone.
func (s *orderAppImpl) ExpireOrder(ctx context.Context, orderID uint64) error {
	return s.cancelWith(ctx, orderID, func(status constant.OrderStatus) bool {
		return status == constant.OrderStatusPending
	})
}

func (s *orderAppImpl) cancelWith(ctx context.Context, orderID uint64, allowed func(constant.OrderStatus) bool) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !allowed(order.Status) {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	items, err := s.orderRepo.GetItemsTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelOrder] get items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	for _, item := range items {
		err := s.inventoryClient.ReleaseStock(ctx, &model.StockOpRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			OrderID:   &orderID,
		})
		if err != nil {
			logger.Error("[CancelOrder] release stock",
				zap.Uint64("order_id", orderID),
				zap.Uint64("product_id", item.ProductID),
				zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrDependencyUnavailable)
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusCancelled); err != nil {
		logger.Error("[CancelOrder] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *orderAppImpl) DeleteOrder(ctx context.Context, orderID uint64) error {
	detail, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[DeleteOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	// pending orders still hold reservations; cancel them first
	if detail.Status == constant.OrderStatusPending || detail.Status == constant.OrderStatusProcessing {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		logger.Error("[DeleteOrder] delete order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
