package dto

// RegisterUniversityRequest represents a university registration request.
// Numeric fields are deliberately not range-validated; the directory accepts
// whatever the admin supplies.
type RegisterUniversityRequest struct {
	Name            string `json:"name" binding:"required"`
	District        string `json:"district"`
	EstablishedYear int    `json:"establishedYear"`
	Type            string `json:"type"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	Address         string `json:"address"`
}
