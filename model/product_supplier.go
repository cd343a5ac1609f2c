package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSupplier is the many-to-many join between catalog products and
// suppliers, carrying the commercial terms per pair.
type ProductSupplier struct {
	ID                   uint64          `db:"id" json:"id"`
	ProductID            uint64          `db:"product_id" json:"product_id"`
	SupplierID           uint64          `db:"supplier_id" json:"supplier_id"`
	SupplierUnitPrice    decimal.Decimal `db:"supplier_unit_price" json:"supplier_unit_price"`
	LeadTimeDays         int             `db:"lead_time_days" json:"lead_time_days"`
	MinimumOrderQuantity int64           `db:"minimum_order_quantity" json:"minimum_order_quantity"`
	IsPreferred          bool            `db:"is_preferred" json:"is_preferred"`
	IsActive             bool            `db:"is_active" json:"is_active"`
	Notes                string          `db:"notes" json:"notes,omitempty"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`

	// joined supplier columns, present on list/detail reads
	SupplierName  string `db:"supplier_name" json:"supplier_name,omitempty"`
	ContactPerson string `db:"contact_person" json:"contact_person,omitempty"`
	SupplierEmail string `db:"supplier_email" json:"supplier_email,omitempty"`
}

type ProductSupplierRequest struct {
	ProductID            uint64          `json:"product_id" validate:"required"`
	SupplierID           uint64          `json:"supplier_id" validate:"required"`
	SupplierUnitPrice    decimal.Decimal `json:"supplier_unit_price" validate:"required"`
	LeadTimeDays         int             `json:"lead_time_days" validate:"omitempty,gte=0"`
	MinimumOrderQuantity int64           `json:"minimum_order_quantity" validate:"omitempty,gte=1"`
	IsPreferred          bool            `json:"is_preferred"`
	Notes                string          `json:"notes"`
}

type UpdateProductSupplierRequest struct {
	SupplierUnitPrice    *decimal.Decimal `json:"supplier_unit_price"`
	LeadTimeDays         *int             `json:"lead_time_days" validate:"omitempty,gte=0"`
	MinimumOrderQuantity *int64           `json:"minimum_order_quantity" validate:"omitempty,gte=1"`
	IsPreferred          *bool            `json:"is_preferred"`
	IsActive             *bool            `json:"is_active"`
	Notes                *string          `json:"notes"`
}

type ProductSupplierFilter struct {
	ProductID  uint64
	SupplierID uint64
	ActiveOnly bool
	Page       int
	PerPage    int
}
