package entity

import "time"

// Role represents a user's access role in the system.
type Role string

const (
	// RoleAdmin grants full administrative access.
	RoleAdmin Role = "admin"
	// RoleResearcher marks field researchers who manage animals and devices.
	RoleResearcher Role = "researcher"
	// RoleRanger marks rangers responding to alerts in the field.
	RoleRanger Role = "ranger"
	// RoleViewer is the default read-only role.
	RoleViewer Role = "viewer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleResearcher, RoleRanger, RoleViewer:
		return true
	default:
		return false
	}
}

// User is a person with access to the system: a researcher, a ranger or an
// administrator. Email is the natural key; ID is assigned by the store on
// first persist and stays empty until then.
type User struct {
	ID        string    `json:"id,omitempty"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name" validate:"required"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser constructs a validated User. An empty role defaults to viewer.
func NewUser(email, name string, role Role) (*User, error) {
	if role == "" {
		role = RoleViewer
	}
	if !role.IsValid() {
		return nil, invalidEnum("role", role.String())
	}

	now := time.Now().UTC()
	user := &User{
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateStruct(user); err != nil {
		return nil, err
	}

	return user, nil
}
