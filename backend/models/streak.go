package models

import "time"

// Streak tracks consecutive practice days for a single user.
// LastQuizDate is nil until the user has completed at least one quiz;
// while it is nil both counters are zero.
type Streak struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        string     `gorm:"uniqueIndex;not null"`
	CurrentStreak int        `gorm:"default:0"`
	BestStreak    int        `gorm:"default:0"`
	LastQuizDate  *time.Time `gorm:"default:null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
