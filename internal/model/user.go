package model

import (
	"time"
)

// Role groups users under a named permission set. Role names are the unit of
// authorization: route guards compare against them directly.
type Role struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Permissions string    `gorm:"type:text" json:"permissions"` // free-form JSON blob
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}

// User represents an account that can log in and work with the system.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	FullName     string    `gorm:"type:varchar(100)" json:"full_name"`
	Email        *string   `gorm:"type:varchar(120);uniqueIndex" json:"email"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	RoleID       uint      `gorm:"not null;index" json:"role_id"`
	Role         *Role     `gorm:"foreignKey:RoleID" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Default role names seeded at startup.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// AdminRoleNames is the allow-list applied to the admin-gated user routes.
var AdminRoleNames = []string{"ADMIN", "admin", "developer"}
