package constant

// Product lifecycle states. Only active products participate in ordering and
// low-stock alerting.
const (
	LifecycleDraft        = "draft"
	LifecycleActive       = "active"
	LifecycleDiscontinued = "discontinued"
)
