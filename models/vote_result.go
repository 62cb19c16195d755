package models

import "time"

// VoteResult is the append-only log of daily winners. Restaurants are
// recorded by name, not by foreign key, so the history reads exactly as
// it was announced.
type VoteResult struct {
	ID             uint      `gorm:"primaryKey"`
	RestaurantName string    `gorm:"type:varchar(500); not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}
