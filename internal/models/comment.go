package models

import "time"

// Comment represents a user-authored note attached to a Profile, optionally
// tagged with personality categories. CreatedAt and Likes carry descending
// indexes backing the recency and popularity listings.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null" json:"userId"`
	MBTI        string    `json:"mbti"`
	Enneagram   string    `json:"enneagram"`
	Zodiac      string    `json:"zodiac"`
	Likes       int       `gorm:"not null;default:0;index:idx_comments_likes,sort:desc" json:"likes"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ProfileID   uint      `gorm:"not null;index" json:"profileId"`
	CreatedAt   time.Time `gorm:"index:idx_comments_created_at,sort:desc" json:"createdAt"`
}
