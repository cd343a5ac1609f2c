package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stockwise/ims/model"
)

type SQL struct {
	conn *sqlx.DB
}

type InventoryRepository interface {
	Create(ctx context.Context, req *model.CreateInventoryRequest) (*model.Inventory, error)
	List(ctx context.Context, filter *model.InventoryFilter) ([]model.Inventory, int64, error)
	GetByProductID(ctx context.Context, productID uint64) (*model.Inventory, error)
	Update(ctx context.Context, productID uint64, req *model.UpdateInventoryRequest) (*model.Inventory, error)
	Delete(ctx context.Context, productID uint64) error
	Stats(ctx context.Context) (*model.InventoryStats, error)
	GetManyByProductIDs(ctx context.Context, productIDs []uint64) ([]model.Inventory, error)

	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Inventory, error)
	AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, productID uint64, delta int64, restocked bool) (*model.Inventory, error)
	ReserveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64) (*model.Inventory, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64) (*model.Inventory, error)
	ConfirmDeductionTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64) (*model.Inventory, error)
	ListLowStockCandidatesTx(ctx context.Context, tx *sqlx.Tx) ([]model.LowStockCandidate, error)
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const inventoryColumns = `id, product_id, sku, quantity, reserved_quantity, warehouse_location,
reorder_level, max_stock_level, last_restocked_at, created_at, updated_at`

const insertInventoryQuery = `INSERT INTO inventory
(product_id, sku, quantity, reserved_quantity, warehouse_location, reorder_level, max_stock_level, created_at)
VALUES ($1, $2, $3, 0, $4, $5, $6, NOW())
RETURNING ` + inventoryColumns

func (s *SQL) Create(ctx context.Context, req *model.CreateInventoryRequest) (*model.Inventory, error) {
	var inv model.Inventory
	err := s.conn.QueryRowxContext(ctx, insertInventoryQuery,
		req.ProductID, req.SKU, req.Quantity, req.WarehouseLocation, req.ReorderLevel, req.MaxStockLevel,
	).StructScan(&inv)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *SQL) List(ctx context.Context, filter *model.InventoryFilter) ([]model.Inventory, int64, error) {
	query := "SELECT " + inventoryColumns + " FROM inventory WHERE true"
	countQuery := "SELECT COUNT(*) FROM inventory WHERE true"
	args := make([]any, 0, 4)

	appendCond := func(cond string, arg any) {
		args = append(args, arg)
		p := placeholder(len(args))
		query += " AND " + cond + p
		countQuery += " AND " + cond + p
	}

	if filter.ProductID != 0 {
		appendCond("product_id = ", filter.ProductID)
	}
	if filter.SKU != "" {
		appendCond("sku = ", filter.SKU)
	}
	if filter.LowStock {
		query += " AND quantity - reserved_quantity < reorder_level"
		countQuery += " AND quantity - reserved_quantity < reorder_level"
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	page, perPage := filter.Page, filter.PerPage
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 50
	}
	args = append(args, perPage)
	query += " ORDER BY product_id LIMIT " + placeholder(len(args))
	args = append(args, (page-1)*perPage)
	query += " OFFSET " + placeholder(len(args))

	items := make([]model.Inventory, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByProductID(ctx context.Context, productID uint64) (*model.Inventory, error) {
	var inv model.Inventory
	q := "SELECT " + inventoryColumns + " FROM inventory WHERE product_id = $1"
	if err := s.conn.QueryRowxContext(ctx, q, productID).StructScan(&inv); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (s *SQL) GetManyByProductIDs(ctx context.Context, productIDs []uint64) ([]model.Inventory, error) {
	query, args, err := sqlx.In("SELECT "+inventoryColumns+" FROM inventory WHERE product_id IN (?)", productIDs)
	if err != nil {
		return nil, err
	}
	query = s.conn.Rebind(query)
	items := make([]model.Inventory, 0, len(productIDs))
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, productID uint64, req *model.UpdateInventoryRequest) (*model.Inventory, error) {
	query := "UPDATE inventory SET updated_at = NOW()"
	args := make([]any, 0, 4)

	if req.WarehouseLocation != nil {
		args = append(args, *req.WarehouseLocation)
		query += ", warehouse_location = " + placeholder(len(args))
	}
	if req.ReorderLevel != nil {
		args = append(args, *req.ReorderLevel)
		query += ", reorder_level = " + placeholder(len(args))
	}
	if req.MaxStockLevel != nil {
		args = append(args, *req.MaxStockLevel)
		query += ", max_stock_level = " + placeholder(len(args))
	}

	args = append(args, productID)
	query += " WHERE product_id = " + placeholder(len(args)) + " RETURNING " + inventoryColumns

	var inv model.Inventory
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&inv); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (s *SQL) Delete(ctx context.Context, productID uint64) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM inventory WHERE product_id = $1", productID)
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

const statsQuery = `SELECT
COUNT(*) as total_products,
COALESCE(SUM(quantity),0) as total_on_hand,
COALESCE(SUM(reserved_quantity),0) as total_reserved,
COUNT(*) FILTER (WHERE quantity - reserved_quantity < reorder_level) as low_stock_count,
COUNT(*) FILTER (WHERE quantity = 0) as out_of_stock
FROM inventory`

func (s *SQL) Stats(ctx context.Context) (*model.InventoryStats, error) {
	var stats model.InventoryStats
	if err := s.conn.GetContext(ctx, &stats, statsQuery); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetForUpdateTx locks the inventory row for the rest of the transaction.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Inventory, error) {
	var inv model.Inventory
	q := "SELECT " + inventoryColumns + " FROM inventory WHERE product_id = $1 FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, productID).StructScan(&inv); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

// AdjustQuantityTx applies delta to on-hand quantity inside the UPDATE itself.
// The guard keeps quantity >= reserved_quantity and >= 0; a violated guard
// matches no row and surfaces as sql.ErrNoRows.
func (s *SQL) AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, productID uint64, delta int64, restocked bool) (*model.Inventory, error) {
	q := `UPDATE inventory
SET quantity = quantity + $2, updated_at = NOW()`
	if restocked {
		q += ", last_restocked_at = NOW()"
	}
	q += ` WHERE product_id = $1 AND quantity + $2 >= reserved_quantity AND quantity + $2 >= 0
RETURNING ` + inventoryColumns

	var inv model.Inventory
	if err := tx.QueryRowxContext(ctx, q, productID, delta).StructScan(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *SQL) ReserveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64) (*model.Inventory, error) {
	q := `UPDATE inventory
SET reserved_quantity = reserved_quantity + $2, updated_at = NOW()
WHERE product_id = $1 AND quantity - reserved_quantity >= $2
RETURNING ` + inventoryColumns

	var inv model.Inventory
	if err := tx.QueryRowxContext(ctx, q, productID, quantity).StructScan(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *SQL) ReleaseTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64) (*model.Inventory, error) {
	q := `UPDATE inventory
SET reserved_quantity = reserved_quantity - $2, updated_at = NOW()
WHERE product_id = $1 AND reserved_quantity >= $2
RETURNING ` + inventoryColumns

	var inv model.Inventory
	if err := tx.QueryRowxContext(ctx, q, productID, quantity).StructScan(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ConfirmDeductionTx converts a reservation into an on-hand deduction on
// shipment: both quantity and reserved_quantity drop together.
func (s *SQL) ConfirmDeductionTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64) (*model.Inventory, error) {
	q := `UPDATE inventory
SET quantity = quantity - $2, reserved_quantity = reserved_quantity - $2, updated_at = NOW()
WHERE product_id = $1 AND reserved_quantity >= $2 AND quantity >= $2
RETURNING ` + inventoryColumns

	var inv model.Inventory
	if err := tx.QueryRowxContext(ctx, q, productID, quantity).StructScan(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

const lowStockCandidatesQuery = `SELECT
product_id, sku, quantity, reserved_quantity,
quantity - reserved_quantity as available_quantity, reorder_level
FROM inventory
WHERE reorder_level > 0 AND quantity - reserved_quantity < reorder_level`

func (s *SQL) ListLowStockCandidatesTx(ctx context.Context, tx *sqlx.Tx) ([]model.LowStockCandidate, error) {
	items := make([]model.LowStockCandidate, 0)
	if err := tx.SelectContext(ctx, &items, lowStockCandidatesQuery); err != nil {
		return nil, err
	}
	return items, nil
}
