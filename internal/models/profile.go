// Package models contains data structures for the application's domain models.
package models

import "time"

// Profile represents a personality profile with its typing attributes.
// Comments are back-references loaded through the ProfileID foreign key,
// ordered by creation time.
type Profile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	MBTI         string    `gorm:"not null" json:"mbti"`
	Enneagram    string    `gorm:"not null" json:"enneagram"`
	Variant      string    `gorm:"not null" json:"variant"`
	Tritype      int       `gorm:"not null" json:"tritype"`
	Socionics    string    `gorm:"not null" json:"socionics"`
	Sloan        string    `gorm:"not null" json:"sloan"`
	Psyche       string    `gorm:"not null" json:"psyche"`
	Temperaments string    `gorm:"not null" json:"temperaments"`
	Image        string    `gorm:"not null" json:"image"`
	Comments     []Comment `gorm:"foreignKey:ProfileID" json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CommentIDs returns the ids of the comments attached to the profile, in the
// order they were loaded.
func (p *Profile) CommentIDs() []uint {
	ids := make([]uint, 0, len(p.Comments))
	for _, c := range p.Comments {
		ids = append(ids, c.ID)
	}
	return ids
}
