package models

import "time"

// Vote records one employee's pick for one calendar day. VoteDate is the
// date component of CreatedAt (server timezone, YYYY-MM-DD); the composite
// unique index with EmployeeID makes "one vote per employee per day" a
// storage-level guarantee instead of a check-then-create race.
type Vote struct {
	ID         uint      `gorm:"primaryKey"`
	MenuID     uint      `gorm:"not null"`
	Menu       Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_votes_employee_day"`
	Employee   User      `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	VoteDate   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_votes_employee_day"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// VoteDay formats t the way VoteDate is stored.
func VoteDay(t time.Time) string {
	return t.Format("2006-01-02")
}
