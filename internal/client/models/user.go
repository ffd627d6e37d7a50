// Package models defines the client-side view types for the Campusfind
// portal: users and roles, lost/found items, claim messages, and the
// access-control matrix. All of them mirror the server's JSON shapes; the
// server owns the data and the client holds transient copies per render.
package models

// Role classifies a portal account.
type Role string

const (
	RoleStudent Role = "Student"
	RoleFaculty Role = "Faculty"
	RoleAdmin   Role = "Admin"
)

// Valid reports whether r is one of the known portal roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User is the identity bound to the session after the MFA step.
type User struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Role     Role   `json:"role"`
}
