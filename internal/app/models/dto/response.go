package dto

// MessageResponse is the envelope for plain status and error responses. The
// platform contract is a flat {"message": "..."} body for every non-data
// response, including errors.
type MessageResponse struct {
	Message string `json:"message" example:"Registered successfully"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
