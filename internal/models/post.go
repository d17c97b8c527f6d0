package models

import "time"

// Post is a piece of feed content. Posts are immutable after creation; there
// is no edit or delete path. Image and Video hold stored upload refs and use
// the empty string, not NULL, when no attachment was provided.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:500" json:"content"`
	Image     string    `gorm:"size:100" json:"image"`
	Video     string    `gorm:"size:100" json:"video"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked bool `gorm:"->;-:migration" json:"liked"`
}
