package model

import (
	"time"

	"github.com/stockwise/ims/constant"
)

type LowStockAlert struct {
	ID              uint64               `db:"id" json:"id"`
	ProductID       uint64               `db:"product_id" json:"product_id"`
	SKU             string               `db:"sku" json:"sku"`
	CurrentQuantity int64                `db:"current_quantity" json:"current_quantity"`
	ReorderLevel    int64                `db:"reorder_level" json:"reorder_level"`
	Status          constant.AlertStatus `db:"status" json:"status"`
	AlertedAt       time.Time            `db:"alerted_at" json:"alerted_at"`
	ResolvedAt      *time.Time           `db:"resolved_at" json:"resolved_at,omitempty"`
	ResolvedBy      *uint64              `db:"resolved_by" json:"resolved_by,omitempty"`
}

// AlertView is an alert joined with its live inventory row and enriched with
// the product name from the catalog service.
type AlertView struct {
	LowStockAlert
	WarehouseLocation string `db:"warehouse_location" json:"warehouse_location"`
	OnHandQuantity    int64  `db:"on_hand_quantity" json:"on_hand_quantity"`
	ReservedQuantity  int64  `db:"reserved_quantity" json:"reserved_quantity"`
	AvailableQuantity int64  `db:"available_quantity" json:"available_quantity"`
	ProductName       string `db:"-" json:"product_name"`
}

// LowStockCandidate is an inventory row below its reorder level, picked up by
// the periodic check.
type LowStockCandidate struct {
	ProductID         uint64 `db:"product_id"`
	SKU               string `db:"sku"`
	Quantity          int64  `db:"quantity"`
	ReservedQuantity  int64  `db:"reserved_quantity"`
	AvailableQuantity int64  `db:"available_quantity"`
	ReorderLevel      int64  `db:"reorder_level"`
}

type AlertStats struct {
	ActiveAlerts   int64 `db:"active_alerts" json:"active_alerts"`
	ResolvedAlerts int64 `db:"resolved_alerts" json:"resolved_alerts"`
	IgnoredAlerts  int64 `db:"ignored_alerts" json:"ignored_alerts"`
	TotalAlerts    int64 `db:"total_alerts" json:"total_alerts"`
}

type ReorderSuggestion struct {
	ProductID              uint64 `db:"product_id" json:"product_id"`
	SKU                    string `db:"sku" json:"sku"`
	CurrentQuantity        int64  `db:"current_quantity" json:"current_quantity"`
	ReorderLevel           int64  `db:"reorder_level" json:"reorder_level"`
	MaxStockLevel          int64  `db:"max_stock_level" json:"max_stock_level"`
	SuggestedOrderQuantity int64  `db:"suggested_order_quantity" json:"suggested_order_quantity"`
	WarehouseLocation      string `db:"warehouse_location" json:"warehouse_location"`
}
