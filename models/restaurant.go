package models

import "time"

// Restaurant belongs to exactly one owner account. The unique index on
// OwnerID is what enforces the single-restaurant-per-owner rule.
type Restaurant struct {
	ID        uint      `gorm:"primaryKey"`
	OwnerID   uint      `gorm:"uniqueIndex;not null"`
	Owner     User      `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name      string    `gorm:"type:varchar(100); not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
