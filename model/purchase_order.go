package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockwise/ims/constant"
)

type PurchaseOrder struct {
	ID                    uint64                    `db:"id" json:"id"`
	PONumber              string                    `db:"po_number" json:"po_number"`
	SupplierID            uint64                    `db:"supplier_id" json:"supplier_id"`
	ProductID             uint64                    `db:"product_id" json:"product_id"`
	SKU                   string                    `db:"sku" json:"sku"`
	RequestedQuantity     int64                     `db:"requested_quantity" json:"requested_quantity"`
	ApprovedQuantity      *int64                    `db:"approved_quantity" json:"approved_quantity,omitempty"`
	UnitPrice             decimal.Decimal           `db:"unit_price" json:"unit_price"`
	TotalAmount           decimal.Decimal           `db:"total_amount" json:"total_amount"`
	Status                constant.POStatus         `db:"status" json:"status"`
	SupplierResponse      constant.SupplierResponse `db:"supplier_response" json:"supplier_response"`
	RejectionReason       string                    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	SupplierNotes         string                    `db:"supplier_notes" json:"supplier_notes,omitempty"`
	TrackingNumber        string                    `db:"tracking_number" json:"tracking_number,omitempty"`
	EstimatedDeliveryDate *time.Time                `db:"estimated_delivery_date" json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time                `db:"actual_delivery_date" json:"actual_delivery_date,omitempty"`
	RespondedAt           *time.Time                `db:"responded_at" json:"responded_at,omitempty"`
	Notes                 string                    `db:"notes" json:"notes,omitempty"`
	CreatedBy             *uint64                   `db:"created_by" json:"created_by,omitempty"`
	CreatedAt             time.Time                 `db:"created_at" json:"created_at"`
	UpdatedAt             *time.Time                `db:"updated_at" json:"updated_at,omitempty"`
}

type PurchaseOrderItem struct {
	ID        uint64          `db:"id" json:"id"`
	POID      uint64          `db:"po_id" json:"po_id"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	SKU       string          `db:"sku" json:"sku"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
}

type CreatePORequest struct {
	SupplierID        uint64  `json:"supplier_id" validate:"required"`
	ProductID         uint64  `json:"product_id" validate:"required"`
	RequestedQuantity int64   `json:"requested_quantity" validate:"required,gt=0"`
	Notes             string  `json:"notes"`
	CreatedBy         *uint64 `json:"-"`
}

type SupplierResponseRequest struct {
	Response              string     `json:"response" validate:"required,oneof=approved rejected partially_approved"`
	ApprovedQuantity      *int64     `json:"approved_quantity" validate:"omitempty,gt=0"`
	RejectionReason       string     `json:"rejection_reason"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	SupplierNotes         string     `json:"supplier_notes"`
}

type ShipmentUpdateRequest struct {
	TrackingNumber     string     `json:"tracking_number"`
	ActualDeliveryDate *time.Time `json:"actual_delivery_date"`
}

type ConfirmReceiptRequest struct {
	Notes string `json:"notes"`
}

// POLineError reports a purchase-order line whose inventory adjustment failed
// during receipt confirmation. The PO is still marked received.
type POLineError struct {
	ProductID uint64 `json:"product_id"`
	Error     string `json:"error"`
}

type ConfirmReceiptResponse struct {
	PurchaseOrder *PurchaseOrder `json:"purchase_order"`
	Successful    bool           `json:"successful"`
	LineErrors    []POLineError  `json:"line_errors,omitempty"`
}

type POFilter struct {
	Status           constant.POStatus
	SupplierID       uint64
	SupplierResponse constant.SupplierResponse
	Limit            int
}

type POStats struct {
	Total       int64           `json:"total"`
	Pending     int64           `json:"pending"`
	Confirmed   int64           `json:"confirmed"`
	Rejected    int64           `json:"rejected"`
	Preparing   int64           `json:"preparing"`
	Shipped     int64           `json:"shipped"`
	Received    int64           `json:"received"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
