package models

import (
	"strings"
)

// User matches the users table created by migration 0001.
// Password holds an argon2id hash and is never serialized.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	UserName string `gorm:"column:user_name;type:varchar(120);not null;unique" json:"user_name"`
	Email    string `gorm:"type:varchar(120);not null;unique" json:"email"`
	Password string `gorm:"type:text;not null" json:"-"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Prepare() {
	u.UserName = strings.TrimSpace(u.UserName)
	u.Email = strings.TrimSpace(u.Email)
}
