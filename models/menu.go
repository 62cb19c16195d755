package models

import "time"

type Menu struct {
	ID           uint       `gorm:"primaryKey"`
	RestaurantID uint       `gorm:"not null"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name         string     `gorm:"type:varchar(100); not null"`
	IsAvailable  bool       `gorm:"default:true"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}
