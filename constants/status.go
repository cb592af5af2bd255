package constants

// User role (claim userinfo.role trong token)
const (
	RoleUser         = 0
	RoleAdmin        = 1
	RoleHost         = 2
	RoleReceptionist = 3
)

// Property status
const (
	PropertyStatusInactive = 0
	PropertyStatusActive   = 1
	PropertyStatusArchived = 2
)

// Context keys do middleware gán
const (
	CtxUserID    = "userID"
	CtxUserRole  = "userRole"
	CtxRequestID = "requestId"
)
