// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. Accounts are created once and never
// updated or deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;unique;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Posts   []Post  `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Stories []Story `gorm:"foreignKey:UserID" json:"stories,omitempty"`
}
