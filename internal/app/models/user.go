package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Jane Doe"`                       // User's display name
	Email     string    `json:"email" db:"email" example:"jane@example.com"`             // User's email address (globally unique)
	Password  string    `json:"-" db:"password"`                                         // User's hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"Student"`                        // User's role (Admin, Student or Alumni)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}

// Student defines the student subtype row based on the 'students' table
type Student struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"userId" db:"user_id"`
}

// Alumnus defines the alumni subtype row based on the 'alumni' table
type Alumnus struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"userId" db:"user_id"`
}

// Membership links a user to a university; the pair is the identity, there
// is no surrogate key.
type Membership struct {
	UserID       int64 `json:"userId" db:"user_id"`
	UniversityID int64 `json:"universityId" db:"university_id"`
}
