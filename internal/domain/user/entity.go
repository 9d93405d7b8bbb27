package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR/IT admin - full access
	RoleManager  Role = "manager"  // Can view team attendance
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is an HR/IT admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanViewOthers checks if user may read other employees' attendance
func (u *User) CanViewOthers() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
