package models

import "time"

// Interaction is the unified record for posts and comments. A Post carries a
// title and a nil ResponseTo; a Comment carries a nil Title and ResponseTo
// pointing at the post it replies to.
type Interaction struct {
	ID           int64           `json:"interactionId" db:"interaction_id"`
	UserID       int64           `json:"userId" db:"user_id"`
	Type         InteractionType `json:"type" db:"type"`
	Title        *string         `json:"title,omitempty" db:"title"`
	Content      string          `json:"content" db:"content"`
	Timestamp    time.Time       `json:"timestamp" db:"timestamp"`
	Votes        int             `json:"votes" db:"votes"`
	UniversityID int64           `json:"universityId" db:"university_id"`
	ResponseTo   *int64          `json:"responseTo,omitempty" db:"response_to"`
}

// IsPost reports whether the interaction is a top-level post.
func (i *Interaction) IsPost() bool {
	return i.Type == InteractionPost
}
