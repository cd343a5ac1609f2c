package user

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

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, includeInactive bool, page, perPage int) ([]model.UserEntity, int64, error)
	Update(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error)
	SoftDelete(ctx context.Context, id uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

const userColumns = "id, username, email, password_hash, full_name, role, is_active, created_at, updated_at"

const insertUserQuery = `INSERT INTO users (username, email, password_hash, full_name, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, true, NOW())
RETURNING ` + userColumns

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	var entity model.UserEntity
	err := s.conn.QueryRowxContext(ctx, insertUserQuery,
		data.Username, data.Email, data.PasswordHash, data.FullName, data.Role,
	).StructScan(&entity)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := "SELECT " + userColumns + " FROM users WHERE true"
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		args = append(args, filter.ID)
		query += " AND id = " + placeholder(len(args))
	}
	if filter.Username != "" {
		args = append(args, filter.Username)
		query += " AND username = " + placeholder(len(args))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		query += " AND email = " + placeholder(len(args))
	}
	if !filter.IncludeInactive {
		query += " AND is_active = true"
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, includeInactive bool, page, perPage int) ([]model.UserEntity, int64, error) {
	query := "SELECT " + userColumns + " FROM users"
	countQuery := "SELECT COUNT(*) FROM users"
	if !includeInactive {
		query += " WHERE is_active = true"
		countQuery += " WHERE is_active = true"
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	query += " ORDER BY id LIMIT $1 OFFSET $2"

	items := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, perPage, (page-1)*perPage); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	query := "UPDATE users SET updated_at = NOW()"
	args := make([]any, 0, 4)

	set := func(col string, arg any) {
		args = append(args, arg)
		query += ", " + col + " = " + placeholder(len(args))
	}

	if req.Email != "" {
		set("email", req.Email)
	}
	if req.FullName != "" {
		set("full_name", req.FullName)
	}
	if req.Role != "" {
		set("role", req.Role)
	}

	args = append(args, id)
	query += " WHERE id = " + placeholder(len(args)) + " RETURNING " + userColumns

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) SoftDelete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, "UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1", id)
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
