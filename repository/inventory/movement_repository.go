package inventory

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
)

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

type MovementRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (*model.StockMovement, error)
	ExistsForReferenceTx(ctx context.Context, tx *sqlx.Tx, productID uint64, movementType constant.MovementType, refType constant.ReferenceType, refID uint64) (bool, error)
	List(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, int64, error)
}

type movementSQL struct {
	conn *sqlx.DB
}

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &movementSQL{conn: conn}
}

const movementColumns = `id, product_id, sku, movement_type, quantity,
reference_type, reference_id, notes, created_by, created_at`

const insertMovementQuery = `INSERT INTO stock_movements
(product_id, sku, movement_type, quantity, reference_type, reference_id, notes, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
RETURNING ` + movementColumns

// InsertTx appends one ledger row. Movements are append-only; there is no
// update or delete path.
func (s *movementSQL) InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) (*model.StockMovement, error) {
	var out model.StockMovement
	err := tx.QueryRowxContext(ctx, insertMovementQuery,
		m.ProductID, m.SKU, m.MovementType, m.Quantity,
		m.ReferenceType, m.ReferenceID, m.Notes, m.CreatedBy,
	).StructScan(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

const movementExistsQuery = `SELECT EXISTS (
SELECT 1 FROM stock_movements
WHERE product_id = $1 AND movement_type = $2 AND reference_type = $3 AND reference_id = $4)`

// ExistsForReferenceTx reports whether a movement of the given type has
// already been recorded against a reference. Used to keep order deductions
// idempotent.
func (s *movementSQL) ExistsForReferenceTx(ctx context.Context, tx *sqlx.Tx, productID uint64, movementType constant.MovementType, refType constant.ReferenceType, refID uint64) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists, movementExistsQuery, productID, movementType, refType, refID)
	return exists, err
}

func (s *movementSQL) List(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, int64, error) {
	query := "SELECT " + movementColumns + " FROM stock_movements WHERE true"
	countQuery := "SELECT COUNT(*) FROM stock_movements WHERE true"
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
	if filter.MovementType != "" {
		appendCond("movement_type = ", filter.MovementType)
	}
	if filter.Since != nil {
		appendCond("created_at >= ", *filter.Since)
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
	query += " ORDER BY created_at DESC, id DESC LIMIT " + placeholder(len(args))
	args = append(args, (page-1)*perPage)
	query += " OFFSET " + placeholder(len(args))

	items := make([]model.StockMovement, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
