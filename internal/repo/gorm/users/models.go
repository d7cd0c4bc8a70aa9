package usersgorm

import "gorm.io/gorm"

// OperatorRecord is a dashboard operator account. Players never have
// accounts here; their identity lives in the snapshot stream.
type OperatorRecord struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	DisplayName  string `gorm:"size:128"`
	Email        string `gorm:"size:256"`
	PasswordHash string `gorm:"size:255"`
	Role         string `gorm:"size:32;default:viewer"`
	Active       bool   `gorm:"default:true"`
}

// Operator roles. Moderators may act on the comment queue and write
// configuration; viewers only read.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleViewer    = "viewer"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&OperatorRecord{})
}
