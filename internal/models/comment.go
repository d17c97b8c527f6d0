package models

import "time"

// Comment is a user's comment on a post. Multiple comments per (user, post)
// are allowed and comments are never edited or deleted. As with Like, UserID
// carries no foreign key constraint; only PostID references posts.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:300" json:"content"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
