package note

import "time"

// Note is a user-owned document. UserID is stamped from the authenticated
// caller at creation and never reassigned.
type Note struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
