package snapshotsgorm

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserDailySnapshot is one user's cumulative counter state as of a date,
// written by the client sync pipeline. This service only ever reads it.
type UserDailySnapshot struct {
	gorm.Model
	UserID                    string         `gorm:"index;size:64;not null"`
	SnapshotDate              time.Time      `gorm:"index;not null"`
	CumulativePlayTimeSeconds float64        `gorm:"default:0"`
	Metrics                   datatypes.JSON `gorm:"type:json"`
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserDailySnapshot{})
}
