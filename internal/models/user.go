package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a person using Pennywise. All other resources are
// owned by exactly one user.
type User struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex" example:"ada"` // Name the user logs in with
	PasswordHash string `json:"-"`                                         // bcrypt hash of the password, never exposed
}

// BeforeSave normalizes the username.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}
