package alert

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AlertRepository interface {
	ListViews(ctx context.Context, status constant.AlertStatus) ([]model.AlertView, error)
	ActiveProductIDsTx(ctx context.Context, tx *sqlx.Tx) (map[uint64]bool, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, c *model.LowStockCandidate) (*model.LowStockAlert, error)
	SetStatus(ctx context.Context, id uint64, status constant.AlertStatus, resolvedBy uint64) (*model.LowStockAlert, error)
	Stats(ctx context.Context) (*model.AlertStats, error)
	ReorderSuggestions(ctx context.Context, limit int) ([]model.ReorderSuggestion, error)
}

func NewAlertRepository(conn *sqlx.DB) AlertRepository {
	return &SQL{conn: conn}
}

const listViewsQuery = `SELECT
lsa.id, lsa.product_id, lsa.sku, lsa.current_quantity, lsa.reorder_level,
lsa.status, lsa.alerted_at, lsa.resolved_at, lsa.resolved_by,
i.warehouse_location,
i.quantity as on_hand_quantity,
i.reserved_quantity,
i.quantity - i.reserved_quantity as available_quantity
FROM low_stock_alerts lsa
JOIN inventory i ON i.product_id = lsa.product_id
WHERE lsa.status = $1
ORDER BY lsa.alerted_at DESC`

func (s *SQL) ListViews(ctx context.Context, status constant.AlertStatus) ([]model.AlertView, error) {
	items := make([]model.AlertView, 0)
	if err := s.conn.SelectContext(ctx, &items, listViewsQuery, status); err != nil {
		return nil, err
	}
	return items, nil
}

// ActiveProductIDsTx returns products that already carry an active alert, so
// the check never creates a second one.
func (s *SQL) ActiveProductIDsTx(ctx context.Context, tx *sqlx.Tx) (map[uint64]bool, error) {
	var ids []uint64
	q := "SELECT product_id FROM low_stock_alerts WHERE status = $1"
	if err := tx.SelectContext(ctx, &ids, q, constant.AlertStatusActive); err != nil {
		return nil, err
	}
	existing := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		existing[id] = true
	}
	return existing, nil
}

const insertAlertQuery = `INSERT INTO low_stock_alerts
(product_id, sku, current_quantity, reorder_level, status, alerted_at)
VALUES ($1, $2, $3, $4, 'active', NOW())
RETURNING id, product_id, sku, current_quantity, reorder_level, status, alerted_at, resolved_at, resolved_by`

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, c *model.LowStockCandidate) (*model.LowStockAlert, error) {
	var a model.LowStockAlert
	err := tx.QueryRowxContext(ctx, insertAlertQuery,
		c.ProductID, c.SKU, c.AvailableQuantity, c.ReorderLevel,
	).StructScan(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const setAlertStatusQuery = `UPDATE low_stock_alerts
SET status = $2, resolved_at = NOW(), resolved_by = $3
WHERE id = $1 AND status = 'active'
RETURNING id, product_id, sku, current_quantity, reorder_level, status, alerted_at, resolved_at, resolved_by`

func (s *SQL) SetStatus(ctx context.Context, id uint64, status constant.AlertStatus, resolvedBy uint64) (*model.LowStockAlert, error) {
	var a model.LowStockAlert
	if err := s.conn.QueryRowxContext(ctx, setAlertStatusQuery, id, status, resolvedBy).StructScan(&a); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

const alertStatsQuery = `SELECT
COUNT(*) FILTER (WHERE status = 'active') as active_alerts,
COUNT(*) FILTER (WHERE status = 'resolved') as resolved_alerts,
COUNT(*) FILTER (WHERE status = 'ignored') as ignored_alerts,
COUNT(*) as total_alerts
FROM low_stock_alerts
WHERE alerted_at >= CURRENT_DATE - INTERVAL '30 days'`

func (s *SQL) Stats(ctx context.Context) (*model.AlertStats, error) {
	var stats model.AlertStats
	if err := s.conn.GetContext(ctx, &stats, alertStatsQuery); err != nil {
		return nil, err
	}
	return &stats, nil
}

const reorderSuggestionsQuery = `SELECT
product_id, sku,
quantity as current_quantity,
reorder_level, max_stock_level,
max_stock_level - quantity as suggested_order_quantity,
warehouse_location
FROM inventory
WHERE quantity <= reorder_level AND reorder_level > 0
ORDER BY reorder_level - quantity DESC
LIMIT $1`

func (s *SQL) ReorderSuggestions(ctx context.Context, limit int) ([]model.ReorderSuggestion, error) {
	if limit <= 0 {
		limit = 50
	}
	items := make([]model.ReorderSuggestion, 0)
	if err := s.conn.SelectContext(ctx, &items, reorderSuggestionsQuery, limit); err != nil {
		return nil, err
	}
	return items, nil
}
