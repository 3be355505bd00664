package models

import "time"

// Like records one user's endorsement of one comment.
// The combination of CommentID and UserID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_user" json:"commentId"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_comment_user" json:"userId"`
	CreatedAt time.Time `json:"created_at"`
}
