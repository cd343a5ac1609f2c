package model

import (
	"time"

	"github.com/stockwise/ims/constant"
)

// StockMovement is one row of the append-only inventory ledger. Rows are never
// updated or deleted.
type StockMovement struct {
	ID            uint64                 `db:"id" json:"id"`
	ProductID     uint64                 `db:"product_id" json:"product_id"`
	SKU           string                 `db:"sku" json:"sku"`
	MovementType  constant.MovementType  `db:"movement_type" json:"movement_type"`
	Quantity      int64                  `db:"quantity" json:"quantity"`
	ReferenceType constant.ReferenceType `db:"reference_type" json:"reference_type,omitempty"`
	ReferenceID   *uint64                `db:"reference_id" json:"reference_id,omitempty"`
	Notes         string                 `db:"notes" json:"notes,omitempty"`
	CreatedBy     *uint64                `db:"created_by" json:"created_by,omitempty"`
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
}

type MovementFilter struct {
	ProductID    uint64
	MovementType constant.MovementType
	Since        *time.Time
	Page         int
	PerPage      int
}
