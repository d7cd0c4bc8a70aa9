package costsgorm

import (
	"time"

	"gorm.io/gorm"
)

// CostMetricRecord is one infrastructure cost sample. MetricValue is bytes
// for bandwidth rows and a count for the other types.
type CostMetricRecord struct {
	gorm.Model
	MetricType  string    `gorm:"index;size:32;not null"`
	MetricValue float64   `gorm:"not null"`
	GameID      string    `gorm:"index;size:64"`
	RecordedAt  time.Time `gorm:"index;not null"`
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&CostMetricRecord{})
}
