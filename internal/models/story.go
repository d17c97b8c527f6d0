package models

import "time"

// Story is a media-only piece of feed content. Despite the name there is no
// expiry: stories persist like posts. Attachment fields follow the same
// empty-string sentinel convention as Post.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Image     string    `gorm:"size:100" json:"image"`
	Video     string    `gorm:"size:100" json:"video"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
