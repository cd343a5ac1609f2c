package category

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stockwise/ims/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	List(ctx context.Context, includeInactive bool) ([]model.Category, error)
	GetByID(ctx context.Context, id uint64) (*model.Category, error)
	Update(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.Category, error)
	SoftDelete(ctx context.Context, id uint64) error
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const categoryColumns = "id, name, description, is_active, created_at"

func (s *SQL) Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	var c model.Category
	q := `INSERT INTO categories (name, description, is_active, created_at)
VALUES ($1, $2, true, NOW()) RETURNING ` + categoryColumns
	if err := s.conn.QueryRowxContext(ctx, q, req.Name, req.Description).StructScan(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQL) List(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	q := "SELECT " + categoryColumns + " FROM categories"
	if !includeInactive {
		q += " WHERE is_active = true"
	}
	q += " ORDER BY name"
	items := make([]model.Category, 0)
	if err := s.conn.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Category, error) {
	var c model.Category
	q := "SELECT " + categoryColumns + " FROM categories WHERE id = $1"
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.Category, error) {
	var c model.Category
	q := `UPDATE categories SET name = $2, description = $3 WHERE id = $1 RETURNING ` + categoryColumns
	if err := s.conn.QueryRowxContext(ctx, q, id, req.Name, req.Description).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) SoftDelete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, "UPDATE categories SET is_active = false WHERE id = $1", id)
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
