package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "Admin"
	RoleStudent RoleType = "Student"
	RoleAlumni  RoleType = "Alumni"
)

// Valid reports whether the role is one the platform knows about.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleAlumni:
		return true
	}
	return false
}

// InteractionType distinguishes the two interaction kinds stored in the
// shared interactions table.
type InteractionType string

const (
	InteractionPost    InteractionType = "Post"
	InteractionComment InteractionType = "Comment"
)
