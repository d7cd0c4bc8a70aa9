package configsgorm

import "gorm.io/gorm"

// ConfigRecord is one platform configuration entry. Values are opaque
// strings; interpretation belongs to the consuming game clients.
type ConfigRecord struct {
	gorm.Model
	ConfigKey   string `gorm:"uniqueIndex;size:128;not null"`
	ConfigValue string `gorm:"type:text"`
	Description string `gorm:"size:255"`
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&ConfigRecord{})
}
