package productsupplier

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/stockwise/ims/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductSupplierRepository interface {
	Create(ctx context.Context, req *model.ProductSupplierRequest) (*model.ProductSupplier, error)
	List(ctx context.Context, filter *model.ProductSupplierFilter) ([]model.ProductSupplier, error)
	FindOne(ctx context.Context, productID, supplierID uint64) (*model.ProductSupplier, error)
	FindBySupplier(ctx context.Context, supplierID uint64) ([]model.ProductSupplier, error)
	FindByProduct(ctx context.Context, productID uint64) ([]model.ProductSupplier, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductSupplierRequest) (*model.ProductSupplier, error)
	Delete(ctx context.Context, id uint64) error
	Exists(ctx context.Context, productID, supplierID uint64) (bool, error)
}

func NewProductSupplierRepository(conn *sqlx.DB) ProductSupplierRepository {
	return &SQL{conn: conn}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

const psColumns = `ps.id, ps.product_id, ps.supplier_id, ps.supplier_unit_price, ps.lead_time_days,
ps.minimum_order_quantity, ps.is_preferred, ps.is_active, ps.notes, ps.created_at`

const psJoined = psColumns + `,
s.name as supplier_name, s.contact_person, s.email as supplier_email`

const insertPSQuery = `INSERT INTO product_suppliers
(product_id, supplier_id, supplier_unit_price, lead_time_days, minimum_order_quantity, is_preferred, is_active, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, true, $7, NOW())
RETURNING id, product_id, supplier_id, supplier_unit_price, lead_time_days, minimum_order_quantity, is_preferred, is_active, notes, created_at`

func (s *SQL) Create(ctx context.Context, req *model.ProductSupplierRequest) (*model.ProductSupplier, error) {
	leadTime := req.LeadTimeDays
	if leadTime == 0 {
		leadTime = 7
	}
	minQty := req.MinimumOrderQuantity
	if minQty == 0 {
		minQty = 1
	}
	var ps model.ProductSupplier
	err := s.conn.QueryRowxContext(ctx, insertPSQuery,
		req.ProductID, req.SupplierID, req.SupplierUnitPrice, leadTime, minQty, req.IsPreferred, req.Notes,
	).StructScan(&ps)
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ProductSupplierFilter) ([]model.ProductSupplier, error) {
	query := `SELECT ` + psJoined + ` FROM product_suppliers ps
JOIN suppliers s ON ps.supplier_id = s.id WHERE true`
	args := make([]any, 0, 4)

	if filter.ActiveOnly {
		query += " AND ps.is_active = true"
	}
	if filter.SupplierID != 0 {
		args = append(args, filter.SupplierID)
		query += " AND ps.supplier_id = " + placeholder(len(args))
	}
	if filter.ProductID != 0 {
		args = append(args, filter.ProductID)
		query += " AND ps.product_id = " + placeholder(len(args))
	}

	page, perPage := filter.Page, filter.PerPage
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 100
	}
	args = append(args, perPage)
	query += " ORDER BY ps.created_at DESC LIMIT " + placeholder(len(args))
	args = append(args, (page-1)*perPage)
	query += " OFFSET " + placeholder(len(args))

	items := make([]model.ProductSupplier, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) FindOne(ctx context.Context, productID, supplierID uint64) (*model.ProductSupplier, error) {
	var ps model.ProductSupplier
	q := `SELECT ` + psJoined + ` FROM product_suppliers ps
JOIN suppliers s ON ps.supplier_id = s.id
WHERE ps.product_id = $1 AND ps.supplier_id = $2`
	if err := s.conn.QueryRowxContext(ctx, q, productID, supplierID).StructScan(&ps); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ps, nil
}

func (s *SQL) FindBySupplier(ctx context.Context, supplierID uint64) ([]model.ProductSupplier, error) {
	q := `SELECT ` + psJoined + ` FROM product_suppliers ps
JOIN suppliers s ON ps.supplier_id = s.id
WHERE ps.supplier_id = $1 AND ps.is_active = true
ORDER BY ps.is_preferred DESC, ps.product_id ASC`
	items := make([]model.ProductSupplier, 0)
	if err := s.conn.SelectContext(ctx, &items, q, supplierID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) FindByProduct(ctx context.Context, productID uint64) ([]model.ProductSupplier, error) {
	q := `SELECT ` + psJoined + ` FROM product_suppliers ps
JOIN suppliers s ON ps.supplier_id = s.id
WHERE ps.product_id = $1 AND ps.is_active = true
ORDER BY ps.is_preferred DESC, ps.supplier_unit_price ASC`
	items := make([]model.ProductSupplier, 0)
	if err := s.conn.SelectContext(ctx, &items, q, productID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateProductSupplierRequest) (*model.ProductSupplier, error) {
	query := "UPDATE product_suppliers SET id = id"
	args := make([]any, 0, 6)

	set := func(col string, arg any) {
		args = append(args, arg)
		query += ", " + col + " = " + placeholder(len(args))
	}

	if req.SupplierUnitPrice != nil {
		set("supplier_unit_price", *req.SupplierUnitPrice)
	}
	if req.LeadTimeDays != nil {
		set("lead_time_days", *req.LeadTimeDays)
	}
	if req.MinimumOrderQuantity != nil {
		set("minimum_order_quantity", *req.MinimumOrderQuantity)
	}
	if req.IsPreferred != nil {
		set("is_preferred", *req.IsPreferred)
	}
	if req.IsActive != nil {
		set("is_active", *req.IsActive)
	}
	if req.Notes != nil {
		set("notes", *req.Notes)
	}

	if len(args) == 0 {
		return nil, sql.ErrNoRows
	}

	args = append(args, id)
	query += " WHERE id = " + placeholder(len(args)) +
		" RETURNING id, product_id, supplier_id, supplier_unit_price, lead_time_days, minimum_order_quantity, is_preferred, is_active, notes, created_at"

	var ps model.ProductSupplier
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&ps); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ps, nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM product_suppliers WHERE id = $1", id)
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

func (s *SQL) Exists(ctx context.Context, productID, supplierID uint64) (bool, error) {
	var id uint64
	q := "SELECT id FROM product_suppliers WHERE product_id = $1 AND supplier_id = $2"
	if err := s.conn.GetContext(ctx, &id, q, productID, supplierID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
