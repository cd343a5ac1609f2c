package order

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error)
	GetByID(ctx context.Context, orderID uint64) (*model.OrderDetail, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int64, error)
	Delete(ctx context.Context, orderID uint64) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

const orderColumns = `id, customer_id, status, total_amount, shipping_address,
payment_method, payment_status, expires_at, created_at, updated_at`

const insertOrderQuery = `INSERT INTO orders
(customer_id, status, total_amount, shipping_address, payment_method, payment_status, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, 'unpaid', $6, NOW())
RETURNING id`

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	var id uint64
	err := tx.QueryRowxContext(ctx, insertOrderQuery,
		req.CustomerID, req.Status, req.TotalAmount, req.ShippingAddress, req.PaymentMethod, req.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	q := `INSERT INTO order_items (order_id, product_id, sku, quantity, unit_price, subtotal)
VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.SKU, it.Quantity, it.UnitPrice, it.Subtotal); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1", orderID, status)
	return err
}

// GetOrderTx locks the order row so concurrent transitions serialize.
func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error) {
	var o model.Order
	q := "SELECT " + orderColumns + " FROM orders WHERE id = $1 FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, orderID).StructScan(&o); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

const itemColumns = "id, order_id, product_id, sku, quantity, unit_price, subtotal"

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	q := "SELECT " + itemColumns + " FROM order_items WHERE order_id = $1 ORDER BY id"
	if err := tx.SelectContext(ctx, &items, q, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetByID(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	q := "SELECT " + orderColumns + " FROM orders WHERE id = $1"
	if err := r.conn.QueryRowxContext(ctx, q, orderID).StructScan(&detail.Order); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	items := make([]model.OrderItem, 0)
	iq := "SELECT " + itemColumns + " FROM order_items WHERE order_id = $1 ORDER BY id"
	if err := r.conn.SelectContext(ctx, &items, iq, orderID); err != nil {
		return nil, err
	}
	detail.Items = items
	return &detail, nil
}

func (r *SQL) List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int64, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE true"
	countQuery := "SELECT COUNT(*) FROM orders WHERE true"
	args := make([]any, 0, 4)

	appendCond := func(cond string, arg any) {
		args = append(args, arg)
		p := placeholder(len(args))
		query += " AND " + cond + p
		countQuery += " AND " + cond + p
	}

	if filter.CustomerID != 0 {
		appendCond("customer_id = ", filter.CustomerID)
	}
	if filter.Status != "" {
		appendCond("status = ", filter.Status)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countQuery, args...); err != nil {
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
	query += " ORDER BY created_at DESC LIMIT " + placeholder(len(args))
	args = append(args, (page-1)*perPage)
	query += " OFFSET " + placeholder(len(args))

	items := make([]model.Order, 0)
	if err := r.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) Delete(ctx context.Context, orderID uint64) error {
	if _, err := r.conn.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", orderID); err != nil {
		return err
	}
	res, err := r.conn.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", orderID)
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
