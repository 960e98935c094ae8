package constants

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
