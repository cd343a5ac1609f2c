package supplier

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

type SupplierRepository interface {
	Create(ctx context.Context, req *model.SupplierRequest) (*model.Supplier, error)
	List(ctx context.Context, filter *model.SupplierFilter) ([]model.Supplier, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Supplier, error)
	Update(ctx context.Context, id uint64, req *model.SupplierRequest) (*model.Supplier, error)
	SoftDelete(ctx context.Context, id uint64) error
}

func NewSupplierRepository(conn *sqlx.DB) SupplierRepository {
	return &SQL{conn: conn}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

const supplierColumns = "id, name, contact_person, email, phone, address, rating, is_active, created_at, updated_at"

const insertSupplierQuery = `INSERT INTO suppliers
(name, contact_person, email, phone, address, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, true, NOW())
RETURNING ` + supplierColumns

func (s *SQL) Create(ctx context.Context, req *model.SupplierRequest) (*model.Supplier, error) {
	var sup model.Supplier
	err := s.conn.QueryRowxContext(ctx, insertSupplierQuery,
		req.Name, req.ContactPerson, req.Email, req.Phone, req.Address,
	).StructScan(&sup)
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *SQL) List(ctx context.Context, filter *model.SupplierFilter) ([]model.Supplier, int64, error) {
	query := "SELECT " + supplierColumns + " FROM suppliers WHERE true"
	countQuery := "SELECT COUNT(*) FROM suppliers WHERE true"
	args := make([]any, 0, 3)

	if !filter.IncludeInactive {
		query += " AND is_active = true"
		countQuery += " AND is_active = true"
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		p := placeholder(len(args))
		query += " AND name ILIKE '%' || " + p + " || '%'"
		countQuery += " AND name ILIKE '%' || " + p + " || '%'"
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
	query += " ORDER BY name LIMIT " + placeholder(len(args))
	args = append(args, (page-1)*perPage)
	query += " OFFSET " + placeholder(len(args))

	items := make([]model.Supplier, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Supplier, error) {
	var sup model.Supplier
	q := "SELECT " + supplierColumns + " FROM suppliers WHERE id = $1"
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&sup); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sup, nil
}

const updateSupplierQuery = `UPDATE suppliers
SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6, updated_at = NOW()
WHERE id = $1
RETURNING ` + supplierColumns

func (s *SQL) Update(ctx context.Context, id uint64, req *model.SupplierRequest) (*model.Supplier, error) {
	var sup model.Supplier
	err := s.conn.QueryRowxContext(ctx, updateSupplierQuery,
		id, req.Name, req.ContactPerson, req.Email, req.Phone, req.Address,
	).StructScan(&sup)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sup, nil
}

func (s *SQL) SoftDelete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, "UPDATE suppliers SET is_active = false, updated_at = NOW() WHERE id = $1", id)
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
