package model

import (
	"time"

	"github.com/stockwise/ims/constant"
)

type Inventory struct {
	ID                uint64     `db:"id" json:"id"`
	ProductID         uint64     `db:"product_id" json:"product_id"`
	SKU               string     `db:"sku" json:"sku"`
	Quantity          int64      `db:"quantity" json:"quantity"`
	ReservedQuantity  int64      `db:"reserved_quantity" json:"reserved_quantity"`
	WarehouseLocation string     `db:"warehouse_location" json:"warehouse_location"`
	ReorderLevel      int64      `db:"reorder_level" json:"reorder_level"`
	MaxStockLevel     int64      `db:"max_stock_level" json:"max_stock_level"`
	LastRestockedAt   *time.Time `db:"last_restocked_at" json:"last_restocked_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// AvailableQuantity is derived, never persisted.
func (i *Inventory) AvailableQuantity() int64 {
	return i.Quantity - i.ReservedQuantity
}

type CreateInventoryRequest struct {
	ProductID         uint64 `json:"product_id" validate:"required"`
	SKU               string `json:"sku" validate:"required"`
	Quantity          int64  `json:"quantity" validate:"gte=0"`
	WarehouseLocation string `json:"warehouse_location" validate:"required"`
	ReorderLevel      int64  `json:"reorder_level" validate:"gte=0"`
	MaxStockLevel     int64  `json:"max_stock_level" validate:"gte=0"`
}

type UpdateInventoryRequest struct {
	WarehouseLocation *string `json:"warehouse_location"`
	ReorderLevel      *int64  `json:"reorder_level" validate:"omitempty,gte=0"`
	MaxStockLevel     *int64  `json:"max_stock_level" validate:"omitempty,gte=0"`
}

type AdjustStockRequest struct {
	ProductID     uint64                 `json:"product_id" validate:"required"`
	Quantity      int64                  `json:"quantity" validate:"required"`
	MovementType  constant.MovementType  `json:"movement_type" validate:"required"`
	ReferenceType constant.ReferenceType `json:"reference_type"`
	ReferenceID   *uint64                `json:"reference_id"`
	Notes         string                 `json:"notes"`
	CreatedBy     uint64                 `json:"-"`
}

type StockOpRequest struct {
	ProductID uint64  `json:"product_id" validate:"required"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
	OrderID   *uint64 `json:"order_id"`
	Notes     string  `json:"notes"`
	CreatedBy uint64  `json:"-"`
}

type InventoryFilter struct {
	ProductID uint64
	SKU       string
	LowStock  bool
	Page      int
	PerPage   int
}

type StockCheckItem struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type BulkStockCheckRequest struct {
	Items []StockCheckItem `json:"items" validate:"required,min=1,dive"`
}

type StockCheckResult struct {
	ProductID uint64 `json:"product_id"`
	SKU       string `json:"sku"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
	Fulfilled bool   `json:"fulfilled"`
}

type InventoryStats struct {
	TotalProducts  int64 `db:"total_products" json:"total_products"`
	TotalOnHand    int64 `db:"total_on_hand" json:"total_on_hand"`
	TotalReserved  int64 `db:"total_reserved" json:"total_reserved"`
	LowStockCount  int64 `db:"low_stock_count" json:"low_stock_count"`
	OutOfStock     int64 `db:"out_of_stock" json:"out_of_stock"`
}
