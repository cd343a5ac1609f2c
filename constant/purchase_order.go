package constant

type POStatus string

const (
	POStatusPending   POStatus = "pending"
	POStatusConfirmed POStatus = "confirmed"
	POStatusRejected  POStatus = "rejected"
	POStatusPreparing POStatus = "preparing"
	POStatusShipped   POStatus = "shipped"
	POStatusReceived  POStatus = "received"
)

var POTransitions = map[POStatus][]POStatus{
	POStatusPending:   {POStatusConfirmed, POStatusRejected},
	POStatusConfirmed: {POStatusPreparing},
	POStatusPreparing: {POStatusShipped},
	POStatusShipped:   {POStatusReceived},
}

func IsValidPOTransition(from, to POStatus) bool {
	for _, next := range POTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SupplierResponse is the supplier-side sub-status of a purchase order,
// distinct from its shipment status.
type SupplierResponse string

const (
	SupplierResponsePending           SupplierResponse = "pending"
	SupplierResponseApproved          SupplierResponse = "approved"
	SupplierResponseRejected          SupplierResponse = "rejected"
	SupplierResponsePartiallyApproved SupplierResponse = "partially_approved"
)
