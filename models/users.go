package models

import "time"

const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(255); unique;not null"`
	Password  string `gorm:"type:varchar(255); not null"`
	Role      string `gorm:"type:varchar(255); not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
