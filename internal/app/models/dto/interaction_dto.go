package dto

import "github.com/ozan/alumnisphere/internal/app/models"

// PostContent is the nested content payload of a post creation request
type PostContent struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreatePostRequest represents a post creation request. Type is accepted so
// a mismatched value can be rejected explicitly; when present it must be
// "Post".
type CreatePostRequest struct {
	Type         string      `json:"type"`
	UniversityID int64       `json:"universityId" binding:"required,min=1"`
	Content      PostContent `json:"content" binding:"required"`
}

// CommentContent is the nested content payload of a comment creation request
type CommentContent struct {
	Description string `json:"description" binding:"required"`
}

// CreateCommentRequest represents a comment creation request; ResponseTo must
// reference an existing post.
type CreateCommentRequest struct {
	Type         string         `json:"type"`
	UniversityID int64          `json:"universityId" binding:"required,min=1"`
	ResponseTo   int64          `json:"responseTo" binding:"required,min=1"`
	Content      CommentContent `json:"content" binding:"required"`
}

// UpdateInteractionRequest represents an interaction update
type UpdateInteractionRequest struct {
	Type    models.InteractionType `json:"type" binding:"required"`
	Content string                 `json:"content" binding:"required"`
}

// InteractionResponse wraps a created or updated interaction with the
// status message the platform contract carries alongside it.
type InteractionResponse struct {
	Message     string              `json:"message"`
	Interaction *models.Interaction `json:"interaction"`
}
