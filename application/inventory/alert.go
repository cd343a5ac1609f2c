package inventory

import (
	"context"

	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	"github.com/stockwise/ims/thirdparty/rabbitmq"
	"github.com/stockwise/ims/thirdparty/svcclient"
	cerr "github.com/stockwise/ims/utils/errors"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

// CheckLowStock scans inventory for rows at or below their reorder level and
// opens an alert for each one that has no active alert yet. Running it twice
// in a row creates nothing new, so it is safe on a schedule.
//
// Products that were discontinued in the catalog are skipped. When the catalog
// is unreachable the behavior follows the LowStockFailOpen setting: fail open
// alerts on every candidate, fail closed aborts the run.
func (s *inventoryAppImpl) CheckLowStock(ctx context.Context) ([]model.LowStockAlert, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CheckLowStock] begin tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	candidates, err := s.inventoryRepo.ListLowStockCandidatesTx(ctx, tx)
	if err != nil {
		logger.Error("[CheckLowStock] list candidates failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	candidates, err = s.filterActiveProducts(ctx, candidates)
	if err != nil {
		return nil, err
	}

	created := make([]model.LowStockAlert, 0)
	if len(candidates) > 0 {
		existing, err := s.alertRepo.ActiveProductIDsTx(ctx, tx)
		if err != nil {
			logger.Error("[CheckLowStock] list active alerts failed", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}

		for i := range candidates {
			c := &candidates[i]
			if existing[c.ProductID] {
				continue
			}
			alert, err := s.alertRepo.InsertTx(ctx, tx, c)
			if err != nil {
				logger.Error("[CheckLowStock] insert alert failed", zap.Uint64("product_id", c.ProductID), zap.String("error", err.Error()))
				return nil, cerr.SetCustomError(constant.ErrInternal)
			}
			created = append(created, *alert)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CheckLowStock] commit tx failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishAlerts(created)

	logger.Info("[CheckLowStock] run finished",
		zap.Int("candidates", len(candidates)),
		zap.Int("created", len(created)))
	return created, nil
}

// filterActiveProducts drops candidates whose product is soft deleted or not
// in the active lifecycle state. Draft and discontinued products never alert.
func (s *inventoryAppImpl) filterActiveProducts(ctx context.Context, candidates []model.LowStockCandidate) ([]model.LowStockCandidate, error) {
	if s.catalogClient == nil || len(candidates) == 0 {
		return candidates, nil
	}

	ids := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ProductID)
	}

	products, err := s.catalogClient.GetProductsBatch(ctx, ids)
	if err != nil {
		if s.config.Services.LowStockFailOpen {
			logger.Warn("[CheckLowStock] catalog unavailable, alerting on all candidates", zap.String("error", err.Error()))
			return candidates, nil
		}
		logger.Error("[CheckLowStock] catalog unavailable", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrDependencyUnavailable)
	}

	active := make(map[uint64]bool, len(products))
	for _, p := range products {
		if p.IsActive && p.LifecycleState == constant.LifecycleActive {
			active[p.ID] = true
		}
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if active[c.ProductID] {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *inventoryAppImpl) publishAlerts(alerts []model.LowStockAlert) {
	if s.publisher == nil {
		return
	}
	for _, a := range alerts {
		msg := rabbitmq.LowStockAlertMessage{
			AlertID:      a.ID,
			ProductID:    a.ProductID,
			SKU:          a.SKU,
			Available:    a.CurrentQuantity,
			ReorderLevel: a.ReorderLevel,
			AlertedAt:    a.AlertedAt,
		}
		if err := s.publisher.PublishLowStockAlert(msg); err != nil {
			logger.Warn("[CheckLowStock] publish alert failed", zap.Uint64("alert_id", a.ID), zap.String("error", err.Error()))
		}
	}
}

// ListAlerts returns alerts in the given state, enriched with product names
// from the catalog. Alerts for products that left the active lifecycle state
// are hidden; name lookup is best effort.
func (s *inventoryAppImpl) ListAlerts(ctx context.Context, status constant.AlertStatus) ([]model.AlertView, error) {
	if status == "" {
		status = constant.AlertStatusActive
	}

	views, err := s.alertRepo.ListViews(ctx, status)
	if err != nil {
		logger.Error("[ListAlerts] list failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if len(views) == 0 || s.catalogClient == nil {
		return views, nil
	}

	ids := make([]uint64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ProductID)
	}

	products, err := s.catalogClient.GetProductsBatch(ctx, ids)
	if err != nil {
		logger.Warn("[ListAlerts] catalog unavailable, names omitted", zap.String("error", err.Error()))
		for i := range views {
			views[i].ProductName = "Unknown Product"
		}
		return views, nil
	}

	byID := make(map[uint64]svcclient.ProductInfo, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	filtered := views[:0]
	for _, v := range views {
		p, known := byID[v.ProductID]
		if known && p.LifecycleState != constant.LifecycleActive {
			continue
		}
		if known {
			v.ProductName = p.Name
		} else {
			v.ProductName = "Unknown Product"
		}
		filtered = append(filtered, v)
	}
	return filtered, nil
}

func (s *inventoryAppImpl) ResolveAlert(ctx context.Context, id, userID uint64) (*model.LowStockAlert, error) {
	return s.closeAlert(ctx, id, userID, constant.AlertStatusResolved)
}

func (s *inventoryAppImpl) IgnoreAlert(ctx context.Context, id, userID uint64) (*model.LowStockAlert, error) {
	return s.closeAlert(ctx, id, userID, constant.AlertStatusIgnored)
}

// closeAlert moves an active alert to a terminal state. Alerts that are
// already resolved or ignored stay as they are.
func (s *inventoryAppImpl) closeAlert(ctx context.Context, id, userID uint64, status constant.AlertStatus) (*model.LowStockAlert, error) {
	alert, err := s.alertRepo.SetStatus(ctx, id, status, userID)
	if err != nil {
		logger.Error("[CloseAlert] update failed", zap.Uint64("alert_id", id), zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if alert == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	return alert, nil
}

func (s *inventoryAppImpl) AlertStats(ctx context.Context) (*model.AlertStats, error) {
	stats, err := s.alertRepo.Stats(ctx)
	if err != nil {
		logger.Error("[AlertStats] query failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}

func (s *inventoryAppImpl) ReorderSuggestions(ctx context.Context, limit int) ([]model.ReorderSuggestion, error) {
	items, err := s.alertRepo.ReorderSuggestions(ctx, limit)
	if err != nil {
		logger.Error("[ReorderSuggestions] query failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}
