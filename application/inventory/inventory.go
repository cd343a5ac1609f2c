package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	alertrepo "github.com/stockwise/ims/repository/alert"
	invrepo "github.com/stockwise/ims/repository/inventory"
	txrepo "github.com/stockwise/ims/repository/tx"
	"github.com/stockwise/ims/thirdparty/rabbitmq"
	"github.com/stockwise/ims/thirdparty/svcclient"
	cerr "github.com/stockwise/ims/utils/errors"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	CreateInventory(ctx context.Context, req *model.CreateInventoryRequest) (*model.Inventory, error)
	ListInventory(ctx context.Context, filter *model.InventoryFilter) ([]model.Inventory, int64, error)
	GetInventory(ctx context.Context, productID uint64) (*model.Inventory, error)
	UpdateInventory(ctx context.Context, productID uint64, req *model.UpdateInventoryRequest) (*model.Inventory, error)
	DeleteInventory(ctx context.Context, productID uint64) error
	Stats(ctx context.Context) (*model.InventoryStats, error)

	AdjustStock(ctx context.Context, req *model.AdjustStockRequest) (*model.Inventory, error)
	ReserveStock(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error)
	ReleaseStock(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error)
	ConfirmDeduction(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error)
	ReturnStock(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error)
	BulkStockCheck(ctx context.Context, items []model.StockCheckItem) ([]model.StockCheckResult, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, int64, error)

	CheckLowStock(ctx context.Context) ([]model.LowStockAlert, error)
	ListAlerts(ctx context.Context, status constant.AlertStatus) ([]model.AlertView, error)
	ResolveAlert(ctx context.Context, id, userID uint64) (*model.LowStockAlert, error)
	IgnoreAlert(ctx context.Context, id, userID uint64) (*model.LowStockAlert, error)
	AlertStats(ctx context.Context) (*model.AlertStats, error)
	ReorderSuggestions(ctx context.Context, limit int) ([]model.ReorderSuggestion, error)
}

type inventoryAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	inventoryRepo invrepo.InventoryRepository
	movementRepo  invrepo.MovementRepository
	alertRepo     alertrepo.AlertRepository
	catalogClient svcclient.CatalogClient
	publisher     *rabbitmq.Publisher
}

func NewInventoryApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	inventoryRepo invrepo.InventoryRepository,
	movementRepo invrepo.MovementRepository,
	alertRepo alertrepo.AlertRepository,
	catalogClient svcclient.CatalogClient,
	publisher *rabbitmq.Publisher,
) InventoryApp {
	return &inventoryAppImpl{
		config:        config,
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		alertRepo:     alertRepo,
		catalogClient: catalogClient,
		publisher:     publisher,
	}
}

// CreateInventory requires the product to exist in the catalog before a row is
// written. This check is fail-closed.
func (s *inventoryAppImpl) CreateInventory(ctx context.Context, req *model.CreateInventoryRequest) (*model.Inventory, error) {
	if s.catalogClient != nil {
		product, err := s.catalogClient.GetProduct(ctx, req.ProductID)
		if err != nil {
			var se *svcclient.StatusError
			if errors.As(err, &se) && se.StatusCode == 404 {
				return nil, cerr.SetCustomError(constant.ErrNotFound)
			}
			logger.Error("[CreateInventory] catalog lookup failed", zap.Uint64("product_id", req.ProductID), zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrDependencyUnavailable)
		}
		if req.SKU == "" {
			req.SKU = product.SKU
		}
	}

	existing, err := s.inventoryRepo.GetByProductID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[CreateInventory] get existing failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, cerr.SetCustomError(constant.ErrDuplicate)
	}

	inv, err := s.inventoryRepo.Create(ctx, req)
	if err != nil {
		logger.Error("[CreateInventory] insert failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	// initial stock shows up in the ledger too
	if req.Quantity > 0 {
		if _, err := s.adjustWithMovement(ctx, &model.AdjustStockRequest{
			ProductID:     req.ProductID,
			Quantity:      req.Quantity,
			MovementType:  constant.MovementIn,
			ReferenceType: constant.ReferenceInitialStock,
			Notes:         "Initial stock",
		}, false); err != nil {
			logger.Warn("[CreateInventory] initial movement not recorded", zap.String("error", err.Error()))
		}
	}

	return inv, nil
}

func (s *inventoryAppImpl) ListInventory(ctx context.Context, filter *model.InventoryFilter) ([]model.Inventory, int64, error) {
	items, total, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListInventory] list failed", zap.String("error", err.Error()))
		return nil, 0, cerr.SetCustomError(constant.ErrInternal)
	}
	return items, total, nil
}

func (s *inventoryAppImpl) GetInventory(ctx context.Context, productID uint64) (*model.Inventory, error) {
	inv, err := s.inventoryRepo.GetByProductID(ctx, productID)
	if err != nil {
		logger.Error("[GetInventory] get failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	return inv, nil
}

func (s *inventoryAppImpl) UpdateInventory(ctx context.Context, productID uint64, req *model.UpdateInventoryRequest) (*model.Inventory, error) {
	inv, err := s.inventoryRepo.Update(ctx, productID, req)
	if err != nil {
		logger.Error("[UpdateInventory] update failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	return inv, nil
}

func (s *inventoryAppImpl) DeleteInventory(ctx context.Context, productID uint64) error {
	if err := s.inventoryRepo.Delete(ctx, productID); err != nil {
		if err == sql.ErrNoRows {
			return cerr.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteInventory] delete failed", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *inventoryAppImpl) Stats(ctx context.Context) (*model.InventoryStats, error) {
	stats, err := s.inventoryRepo.Stats(ctx)
	if err != nil {
		logger.Error("[Stats] query failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}

// AdjustStock applies one manual stock movement. The quantity delta and the
// ledger row commit or roll back together.
func (s *inventoryAppImpl) AdjustStock(ctx context.Context, req *model.AdjustStockRequest) (*model.Inventory, error) {
	if !constant.MovementTypes[req.MovementType] {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Quantity == 0 {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.MovementType != constant.MovementAdjustment && req.Quantity < 0 {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.adjustWithMovement(ctx, req, req.MovementType == constant.MovementIn)
}

func (s *inventoryAppImpl) adjustWithMovement(ctx context.Context, req *model.AdjustStockRequest, restocked bool) (*model.Inventory, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AdjustStock] begin tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	inv, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[AdjustStock] lock row failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	delta := req.Quantity
	if req.MovementType != constant.MovementAdjustment {
		delta = constant.MovementDirection(req.MovementType) * req.Quantity
	}

	updated, err := s.inventoryRepo.AdjustQuantityTx(ctx, tx, req.ProductID, delta, restocked)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cerr.SetCustomError(constant.ErrInsufficientStock)
		}
		logger.Error("[AdjustStock] update failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	movement := &model.StockMovement{
		ProductID:     req.ProductID,
		SKU:           inv.SKU,
		MovementType:  req.MovementType,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Notes:         req.Notes,
	}
	if req.CreatedBy != 0 {
		movement.CreatedBy = &req.CreatedBy
	}
	if _, err := s.movementRepo.InsertTx(ctx, tx, movement); err != nil {
		logger.Error("[AdjustStock] insert movement failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AdjustStock] commit tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return updated, nil
}

// ReserveStock places a hold for a pending order. No ledger row is written;
// nothing has moved yet.
func (s *inventoryAppImpl) ReserveStock(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReserveStock] begin tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	inv, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[ReserveStock] lock row failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	updated, err := s.inventoryRepo.ReserveTx(ctx, tx, req.ProductID, req.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Info("[ReserveStock] insufficient stock",
				zap.Uint64("product_id", req.ProductID),
				zap.Int64("requested", req.Quantity),
				zap.Int64("available", inv.AvailableQuantity()))
			return nil, cerr.SetCustomError(constant.ErrInsufficientStock)
		}
		logger.Error("[ReserveStock] update failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReserveStock] commit tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return updated, nil
}

// ReleaseStock drops a hold on cancellation.
func (s *inventoryAppImpl) ReleaseStock(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReleaseStock] begin tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	inv, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[ReleaseStock] lock row failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	updated, err := s.inventoryRepo.ReleaseTx(ctx, tx, req.ProductID, req.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
		}
		logger.Error("[ReleaseStock] update failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReleaseStock] commit tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return updated, nil
}

// ConfirmDeduction turns a reservation into an on-hand deduction when the
// order ships, and appends the matching ledger row.
func (s *inventoryAppImpl) ConfirmDeduction(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ConfirmDeduction] begin tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	inv, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[ConfirmDeduction] lock row failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	// deductions are keyed by order in the ledger; a line already deducted is
	// left alone so a ship retry after a partial failure succeeds
	if req.OrderID != nil {
		deducted, err := s.movementRepo.ExistsForReferenceTx(ctx, tx, req.ProductID,
			constant.MovementOut, constant.ReferenceOrder, *req.OrderID)
		if err != nil {
			logger.Error("[ConfirmDeduction] ledger lookup failed", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
		if deducted {
			logger.Info("[ConfirmDeduction] already deducted for order",
				zap.Uint64("product_id", req.ProductID),
				zap.Uint64("order_id", *req.OrderID))
			return inv, nil
		}
	}

	updated, err := s.inventoryRepo.ConfirmDeductionTx(ctx, tx, req.ProductID, req.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cerr.SetCustomError(constant.ErrInsufficientStock)
		}
		logger.Error("[ConfirmDeduction] update failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	movement := &model.StockMovement{
		ProductID:     req.ProductID,
		SKU:           inv.SKU,
		MovementType:  constant.MovementOut,
		Quantity:      req.Quantity,
		ReferenceType: constant.ReferenceOrder,
		ReferenceID:   req.OrderID,
		Notes:         req.Notes,
	}
	if req.CreatedBy != 0 {
		movement.CreatedBy = &req.CreatedBy
	}
	if _, err := s.movementRepo.InsertTx(ctx, tx, movement); err != nil {
		logger.Error("[ConfirmDeduction] insert movement failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ConfirmDeduction] commit tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return updated, nil
}

// ReturnStock puts goods from a returned order back on hand.
func (s *inventoryAppImpl) ReturnStock(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error) {
	adj := &model.AdjustStockRequest{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		MovementType:  constant.MovementReturn,
		ReferenceType: constant.ReferenceOrder,
		ReferenceID:   req.OrderID,
		Notes:         req.Notes,
		CreatedBy:     req.CreatedBy,
	}
	return s.adjustWithMovement(ctx, adj, false)
}

func (s *inventoryAppImpl) BulkStockCheck(ctx context.Context, items []model.StockCheckItem) ([]model.StockCheckResult, error) {
	ids := make([]uint64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	rows, err := s.inventoryRepo.GetManyByProductIDs(ctx, ids)
	if err != nil {
		logger.Error("[BulkStockCheck] query failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	byProduct := make(map[uint64]*model.Inventory, len(rows))
	for i := range rows {
		byProduct[rows[i].ProductID] = &rows[i]
	}

	results := make([]model.StockCheckResult, 0, len(items))
	for _, it := range items {
		res := model.StockCheckResult{ProductID: it.ProductID, Requested: it.Quantity}
		if inv, ok := byProduct[it.ProductID]; ok {
			res.SKU = inv.SKU
			res.Available = inv.AvailableQuantity()
			res.Fulfilled = res.Available >= it.Quantity
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *inventoryAppImpl) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, int64, error) {
	items, total, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListMovements] list failed", zap.String("error", err.Error()))
		return nil, 0, cerr.SetCustomError(constant.ErrInternal)
	}
	return items, total, nil
}
