package models

import "time"

// Complaint lifecycle statuses. Every stored complaint carries exactly
// one of these values; new complaints start as Open.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// ValidStatus reports whether s is one of the three lifecycle statuses.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusResolved
}

// Complaint is a grievance filed by a student against the facility.
// Category and Image are optional; the Image field references a file in
// the upload area by name, never the file bytes themselves.
type Complaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    *string   `gorm:"type:varchar(120)" json:"category"`
	Image       *string   `gorm:"type:varchar(255)" json:"image"`
	Status      string    `gorm:"type:varchar(16);not null;default:Open" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// Owner enforces the foreign key to users.
	Owner User `gorm:"foreignKey:UserID" json:"-"`
}

// StatusCount is one row of the by-status aggregation.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// CategoryCount is one row of the by-category aggregation. Complaints
// with no category are reported under the "Uncategorized" bucket.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
