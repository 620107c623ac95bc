package user

import "time"

type Role string

const (
	RoleMaster   Role = "master"   // Company owner - full access
	RoleAdmin    Role = "admin"    // HR admin - runs payroll, manages policies
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID        string
	CompanyID *string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeID *string
}

// IsMaster checks if user is company owner
func (u *User) IsMaster() bool {
	return u.Role == RoleMaster
}

// IsAdmin checks if user is admin or owner
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleMaster
}

// CanRunPayroll checks if user may generate and finalize payroll batches
func (u *User) CanRunPayroll() bool {
	return u.IsAdmin()
}
