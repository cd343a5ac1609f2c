package constant

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementReturn     MovementType = "return"
	MovementDamaged    MovementType = "damaged"
	MovementExpired    MovementType = "expired"
	MovementAdjustment MovementType = "adjustment"
)

var MovementTypes = map[MovementType]bool{
	MovementIn:         true,
	MovementOut:        true,
	MovementReturn:     true,
	MovementDamaged:    true,
	MovementExpired:    true,
	MovementAdjustment: true,
}

// MovementDirection returns +1 for movements that add stock and -1 for
// movements that remove it. Adjustments carry their own sign in the quantity.
func MovementDirection(t MovementType) int64 {
	switch t {
	case MovementIn, MovementReturn:
		return 1
	case MovementOut, MovementDamaged, MovementExpired:
		return -1
	default:
		return 1
	}
}

type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusResolved AlertStatus = "resolved"
	AlertStatusIgnored  AlertStatus = "ignored"
)

type ReferenceType string

const (
	ReferenceOrder         ReferenceType = "order"
	ReferencePurchaseOrder ReferenceType = "purchase_order"
	ReferenceInitialStock  ReferenceType = "initial_stock"
	ReferenceManual        ReferenceType = "manual"
)
