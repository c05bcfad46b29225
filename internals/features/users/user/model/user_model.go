package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FullName  *string   `gorm:"size:100" json:"full_name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
}
