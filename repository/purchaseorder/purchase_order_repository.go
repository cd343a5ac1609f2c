package purchaseorder

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) (*model.PurchaseOrder, error)
	GetByID(ctx context.Context, id uint64) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter *model.POFilter) ([]model.PurchaseOrder, error)
	UpdateResponse(ctx context.Context, id uint64, upd *ResponseUpdate) (*model.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.POStatus) (*model.PurchaseOrder, error)
	UpdateShipment(ctx context.Context, id uint64, status constant.POStatus, trackingNumber string, deliveryDate *time.Time) (*model.PurchaseOrder, error)
	MarkReceived(ctx context.Context, id uint64, notes string) (*model.PurchaseOrder, error)
	GetItems(ctx context.Context, poID uint64) ([]model.PurchaseOrderItem, error)
	InsertItem(ctx context.Context, item *model.PurchaseOrderItem) error
	Delete(ctx context.Context, id uint64) error
	Stats(ctx context.Context, supplierID uint64) (*model.POStats, error)
}

// ResponseUpdate carries the supplier's answer to a purchase request.
type ResponseUpdate struct {
	Response              constant.SupplierResponse
	Status                constant.POStatus
	ApprovedQuantity      *int64
	RejectionReason       string
	SupplierNotes         string
	EstimatedDeliveryDate *time.Time
}

func NewPurchaseOrderRepository(conn *sqlx.DB) PurchaseOrderRepository {
	return &SQL{conn: conn}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

const poColumns = `id, po_number, supplier_id, product_id, sku, requested_quantity, approved_quantity,
unit_price, total_amount, status, supplier_response, rejection_reason, supplier_notes,
tracking_number, estimated_delivery_date, actual_delivery_date, responded_at, notes,
created_by, created_at, updated_at`

const insertPOQuery = `INSERT INTO purchase_orders
(po_number, supplier_id, product_id, sku, requested_quantity, unit_price, total_amount,
status, supplier_response, notes, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', 'pending', $8, $9, NOW())
RETURNING ` + poColumns

func (s *SQL) Create(ctx context.Context, po *model.PurchaseOrder) (*model.PurchaseOrder, error) {
	var out model.PurchaseOrder
	err := s.conn.QueryRowxContext(ctx, insertPOQuery,
		po.PONumber, po.SupplierID, po.ProductID, po.SKU, po.RequestedQuantity,
		po.UnitPrice, po.TotalAmount, po.Notes, po.CreatedBy,
	).StructScan(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	q := "SELECT " + poColumns + " FROM purchase_orders WHERE id = $1"
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&po); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

func (s *SQL) List(ctx context.Context, filter *model.POFilter) ([]model.PurchaseOrder, error) {
	query := "SELECT " + poColumns + " FROM purchase_orders WHERE true"
	args := make([]any, 0, 4)

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += " AND status = " + placeholder(len(args))
	}
	if filter.SupplierID != 0 {
		args = append(args, filter.SupplierID)
		query += " AND supplier_id = " + placeholder(len(args))
	}
	if filter.SupplierResponse != "" {
		args = append(args, filter.SupplierResponse)
		query += " AND supplier_response = " + placeholder(len(args))
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT " + placeholder(len(args))
	}

	items := make([]model.PurchaseOrder, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

const updateResponseQuery = `UPDATE purchase_orders
SET supplier_response = $2, status = $3, approved_quantity = $4, rejection_reason = $5,
supplier_notes = $6, estimated_delivery_date = $7, responded_at = NOW(), updated_at = NOW()
WHERE id = $1
RETURNING ` + poColumns

func (s *SQL) UpdateResponse(ctx context.Context, id uint64, upd *ResponseUpdate) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := s.conn.QueryRowxContext(ctx, updateResponseQuery,
		id, upd.Response, upd.Status, upd.ApprovedQuantity, upd.RejectionReason,
		upd.SupplierNotes, upd.EstimatedDeliveryDate,
	).StructScan(&po)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.POStatus) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	q := "UPDATE purchase_orders SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING " + poColumns
	if err := s.conn.QueryRowxContext(ctx, q, id, status).StructScan(&po); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

const updateShipmentQuery = `UPDATE purchase_orders
SET status = $2, tracking_number = COALESCE(NULLIF($3, ''), tracking_number),
actual_delivery_date = COALESCE($4, actual_delivery_date), updated_at = NOW()
WHERE id = $1
RETURNING ` + poColumns

func (s *SQL) UpdateShipment(ctx context.Context, id uint64, status constant.POStatus, trackingNumber string, deliveryDate *time.Time) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := s.conn.QueryRowxContext(ctx, updateShipmentQuery, id, status, trackingNumber, deliveryDate).StructScan(&po)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

const markReceivedQuery = `UPDATE purchase_orders
SET status = 'received', actual_delivery_date = NOW(), notes = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + poColumns

func (s *SQL) MarkReceived(ctx context.Context, id uint64, notes string) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := s.conn.QueryRowxContext(ctx, markReceivedQuery, id, notes).StructScan(&po); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

func (s *SQL) GetItems(ctx context.Context, poID uint64) ([]model.PurchaseOrderItem, error) {
	items := make([]model.PurchaseOrderItem, 0)
	q := "SELECT id, po_id, product_id, sku, quantity, unit_price FROM purchase_order_items WHERE po_id = $1 ORDER BY id"
	if err := s.conn.SelectContext(ctx, &items, q, poID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) InsertItem(ctx context.Context, item *model.PurchaseOrderItem) error {
	q := `INSERT INTO purchase_order_items (po_id, product_id, sku, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)`
	_, err := s.conn.ExecContext(ctx, q, item.POID, item.ProductID, item.SKU, item.Quantity, item.UnitPrice)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM purchase_order_items WHERE po_id = $1", id); err != nil {
		return err
	}
	res, err := s.conn.ExecContext(ctx, "DELETE FROM purchase_orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const poStatsQuery = `SELECT
COUNT(*) as total,
COUNT(*) FILTER (WHERE status = 'pending') as pending,
COUNT(*) FILTER (WHERE status = 'confirmed') as confirmed,
COUNT(*) FILTER (WHERE status = 'rejected') as rejected,
COUNT(*) FILTER (WHERE status = 'preparing') as preparing,
COUNT(*) FILTER (WHERE status = 'shipped') as shipped,
COUNT(*) FILTER (WHERE status = 'received') as received,
COALESCE(SUM(total_amount), 0) as total_amount
FROM purchase_orders`

func (s *SQL) Stats(ctx context.Context, supplierID uint64) (*model.POStats, error) {
	query := poStatsQuery
	args := make([]any, 0, 1)
	if supplierID != 0 {
		args = append(args, supplierID)
		query += " WHERE supplier_id = $1"
	}

	row := s.conn.QueryRowxContext(ctx, query, args...)
	var stats model.POStats
	var totalAmount decimal.Decimal
	err := row.Scan(&stats.Total, &stats.Pending, &stats.Confirmed, &stats.Rejected,
		&stats.Preparing, &stats.Shipped, &stats.Received, &totalAmount)
	if err != nil {
		return nil, err
	}
	stats.TotalAmount = totalAmount
	return &stats, nil
}
