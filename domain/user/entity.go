package user

import (
	"time"
)

// User represents a registered account that owns tasks.
type User struct {
	ID           string `gorm:"primaryKey;type:text"`
	Email        string `gorm:"uniqueIndex;not null;type:text"`
	PasswordHash string `gorm:"not null;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// Claims is the identity bound to a request after token validation.
// The email is the only claim this system attaches to a caller.
type Claims struct {
	Email string `json:"email"`
}
