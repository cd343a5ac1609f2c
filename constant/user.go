package constant

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleWarehouseStaff Role = "warehouse_staff"
	RoleSupplier       Role = "supplier"
)

var Roles = map[Role]bool{
	RoleAdmin:          true,
	RoleWarehouseStaff: true,
	RoleSupplier:       true,
}
