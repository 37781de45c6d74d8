// internal/domain/user/entity.go
package user

import "time"

// User represents a registered account. Accounts are created on
// sign-up and never updated or deleted.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string    `gorm:"not null;size:255" json:"-"` // bcrypt hash, never returned
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// sanitized returns a copy safe to hand to callers
func (u User) sanitized() *User {
	u.Password = ""
	return &u
}
