package accounts

// Principal kinds
const (
	KindClient   = "client"
	KindEmployee = "employee"
)

// Employee roles
const (
	RoleCEO      = "ceo"
	RoleManager  = "manager"
	RoleEngineer = "engineer"
	RoleSales    = "sales"
	RoleIntern   = "intern"
)

// RoleClient is the role carried by client principals.
const RoleClient = "client"

// Password length bounds. bcrypt ignores input past 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)
