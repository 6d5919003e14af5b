package models

import "time"

// Roles supported by the system. A role is a coarse permission tier
// embedded in the access token and checked per-route.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered account. The password column holds a
// bcrypt hash and is never serialised into responses.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Email     string    `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(16);not null;default:student" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeRole coerces any unrecognised role to student. Registration
// accepts a role field but only the two known tiers are ever stored.
func NormalizeRole(role string) string {
	if role == RoleStudent || role == RoleAdmin {
		return role
	}
	return RoleStudent
}
