package dto

// UserNameResponse is the lookup payload for GET /user/:id; the endpoint
// exposes nothing beyond the display name.
type UserNameResponse struct {
	Name string `json:"name"`
}
