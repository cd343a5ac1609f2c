package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockwise/ims/constant"
)

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	CustomerID      uint64
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shipping_address" validate:"required"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
}

type OrderResponse struct {
	OrderID     uint64          `json:"order_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

type Order struct {
	ID              uint64                 `db:"id" json:"id"`
	CustomerID      uint64                 `db:"customer_id" json:"customer_id"`
	Status          constant.OrderStatus   `db:"status" json:"status"`
	TotalAmount     decimal.Decimal        `db:"total_amount" json:"total_amount"`
	ShippingAddress string                 `db:"shipping_address" json:"shipping_address"`
	PaymentMethod   string                 `db:"payment_method" json:"payment_method"`
	PaymentStatus   constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	ExpiresAt       *time.Time             `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt       time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
}

type OrderItem struct {
	ID        uint64          `db:"id" json:"id"`
	OrderID   uint64          `db:"order_id" json:"order_id"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	SKU       string          `db:"sku" json:"sku"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
	Subtotal  decimal.Decimal `db:"subtotal" json:"subtotal"`
}

type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}

type InsertOrderTxItem struct {
	CustomerID      uint64
	Status          constant.OrderStatus
	TotalAmount     decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	ExpiresAt       time.Time
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

type OrderFilter struct {
	CustomerID uint64
	Status     constant.OrderStatus
	Page       int
	PerPage    int
}

// StockShortage is one line of the aggregated insufficient-stock error
// returned when an order cannot be fully reserved.
type StockShortage struct {
	ProductID uint64 `json:"product_id"`
	SKU       string `json:"sku"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}
