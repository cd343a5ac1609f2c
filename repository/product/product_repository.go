package product

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

type ProductRepository interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)
	GetManyByIDs(ctx context.Context, ids []uint64) ([]model.Product, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error)
	SoftDelete(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

const productColumns = `id, sku, name, description, category_id, size, color, unit_price,
supplier_id, is_active, lifecycle_state, attributes, created_at, updated_at`

const insertProductQuery = `INSERT INTO products
(sku, name, description, category_id, size, color, unit_price, supplier_id, is_active, lifecycle_state, attributes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, $9, $10, NOW())
RETURNING ` + productColumns

func (s *SQL) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	state := req.LifecycleState
	if state == "" {
		state = "active"
	}
	attrs := req.Attributes
	if len(attrs) == 0 {
		attrs = []byte("{}")
	}
	var p model.Product
	err := s.conn.QueryRowxContext(ctx, insertProductQuery,
		req.SKU, req.Name, req.Description, req.CategoryID, req.Size, req.Color,
		req.UnitPrice, req.SupplierID, state, attrs,
	).StructScan(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int64, error) {
	query := "SELECT " + productColumns + " FROM products WHERE true"
	countQuery := "SELECT COUNT(*) FROM products WHERE true"
	args := make([]any, 0, 5)

	appendCond := func(cond string, arg any) {
		args = append(args, arg)
		p := placeholder(len(args))
		query += " AND " + cond + p
		countQuery += " AND " + cond + p
	}

	if !filter.IncludeInactive {
		query += " AND is_active = true"
		countQuery += " AND is_active = true"
	}
	if filter.CategoryID != 0 {
		appendCond("category_id = ", filter.CategoryID)
	}
	if filter.SupplierID != 0 {
		appendCond("supplier_id = ", filter.SupplierID)
	}
	if filter.LifecycleState != "" {
		appendCond("lifecycle_state = ", filter.LifecycleState)
	}
	if filter.Search != "" {
		appendCond("(name ILIKE '%' || ", filter.Search)
		query += " || '%' OR sku ILIKE '%' || " + placeholder(len(args)) + " || '%')"
		countQuery += " || '%' OR sku ILIKE '%' || " + placeholder(len(args)) + " || '%')"
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
		perPage = 20
	}
	args = append(args, perPage)
	query += " ORDER BY id LIMIT " + placeholder(len(args))
	args = append(args, (page-1)*perPage)
	query += " OFFSET " + placeholder(len(args))

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	q := "SELECT " + productColumns + " FROM products WHERE id = $1"
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	q := "SELECT " + productColumns + " FROM products WHERE sku = $1"
	if err := s.conn.QueryRowxContext(ctx, q, sku).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) GetManyByIDs(ctx context.Context, ids []uint64) ([]model.Product, error) {
	query, args, err := sqlx.In("SELECT "+productColumns+" FROM products WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	query = s.conn.Rebind(query)
	items := make([]model.Product, 0, len(ids))
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error) {
	query := "UPDATE products SET updated_at = NOW()"
	args := make([]any, 0, 8)

	set := func(col string, arg any) {
		args = append(args, arg)
		query += ", " + col + " = " + placeholder(len(args))
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.CategoryID != nil {
		set("category_id", *req.CategoryID)
	}
	if req.Size != nil {
		set("size", *req.Size)
	}
	if req.Color != nil {
		set("color", *req.Color)
	}
	if req.UnitPrice != nil {
		set("unit_price", *req.UnitPrice)
	}
	if req.SupplierID != nil {
		set("supplier_id", *req.SupplierID)
	}
	if req.LifecycleState != nil {
		set("lifecycle_state", *req.LifecycleState)
	}
	if len(req.Attributes) > 0 {
		set("attributes", []byte(req.Attributes))
	}

	args = append(args, id)
	query += " WHERE id = " + placeholder(len(args)) + " RETURNING " + productColumns

	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) SoftDelete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, "UPDATE products SET is_active = false, updated_at = NOW() WHERE id = $1", id)
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
