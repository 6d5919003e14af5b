package models

import "time"

// Comment is one entry in a complaint's discussion thread. Comments are
// append-only: they are never edited or deleted.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `json:"created_at"`

	Complaint Complaint `gorm:"foreignKey:ComplaintID" json:"-"`
	Author    User      `gorm:"foreignKey:UserID" json:"-"`
}

// CommentThreadEntry is a comment joined with its author's public
// identity, as returned by the thread listing.
type CommentThreadEntry struct {
	ID         uint      `json:"id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
}
