package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uint64          `db:"id" json:"id"`
	SKU            string          `db:"sku" json:"sku"`
	Name           string          `db:"name" json:"name"`
	Description    string          `db:"description" json:"description,omitempty"`
	CategoryID     *uint64         `db:"category_id" json:"category_id,omitempty"`
	Size           string          `db:"size" json:"size,omitempty"`
	Color          string          `db:"color" json:"color,omitempty"`
	UnitPrice      decimal.Decimal `db:"unit_price" json:"unit_price"`
	SupplierID     *uint64         `db:"supplier_id" json:"supplier_id,omitempty"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	LifecycleState string          `db:"lifecycle_state" json:"lifecycle_state"`
	Attributes     json.RawMessage `db:"attributes" json:"attributes,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateProductRequest struct {
	SKU            string          `json:"sku" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	CategoryID     *uint64         `json:"category_id"`
	Size           string          `json:"size"`
	Color          string          `json:"color"`
	UnitPrice      decimal.Decimal `json:"unit_price" validate:"required"`
	SupplierID     *uint64         `json:"supplier_id"`
	LifecycleState string          `json:"lifecycle_state" validate:"omitempty,oneof=draft active discontinued"`
	Attributes     json.RawMessage `json:"attributes"`
}

type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	CategoryID     *uint64          `json:"category_id"`
	Size           *string          `json:"size"`
	Color          *string          `json:"color"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	SupplierID     *uint64          `json:"supplier_id"`
	LifecycleState *string          `json:"lifecycle_state" validate:"omitempty,oneof=draft active discontinued"`
	Attributes     json.RawMessage  `json:"attributes"`
}

type ProductFilter struct {
	CategoryID      uint64
	SupplierID      uint64
	LifecycleState  string
	Search          string
	IncludeInactive bool
	Page            int
	PerPage         int
}

type ProductBatchRequest struct {
	IDs []uint64 `json:"ids" validate:"required,min=1"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
