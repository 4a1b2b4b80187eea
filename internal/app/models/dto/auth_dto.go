package dto

import "github.com/ozan/alumnisphere/internal/app/models"

// RegisterRequest represents a registration request; the role comes from the
// route, not the body.
type RegisterRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required"`
	UniversityIDs []int64 `json:"universityIds"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProfile represents the user portion of a login response. UniversityIDs
// carries the resolved membership set for non-Admin users.
type UserProfile struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          models.RoleType `json:"role"`
	UniversityIDs []int64         `json:"universityIds,omitempty"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        UserProfile `json:"user"`
}
