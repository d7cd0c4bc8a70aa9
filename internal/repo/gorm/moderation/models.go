package moderationgorm

import (
	"time"

	"gorm.io/gorm"
)

// CommentRecord carries the player-facing comment plus its moderation state.
// The counter columns are trigger-maintained caches; ReportsCount in
// particular can lag behind the report rows and is never used for severity.
type CommentRecord struct {
	gorm.Model
	GameID        string `gorm:"index;size:64"`
	UserID        string `gorm:"index;size:64;not null"`
	Username      string `gorm:"size:128"`
	UserAvatarURL string `gorm:"size:255"`
	Content       string `gorm:"type:text"`
	LikesCount    int    `gorm:"default:0"`
	DislikesCount int    `gorm:"default:0"`
	RepliesCount  int    `gorm:"default:0"`
	ReportsCount  int    `gorm:"default:0"`
	IsHidden      bool   `gorm:"default:false"`
	IsDeleted     bool   `gorm:"default:false"`
	HiddenAt      *time.Time
}

// CommentReportRecord is one user's report against a comment, the source of
// truth for report counts.
type CommentReportRecord struct {
	gorm.Model
	CommentID uint   `gorm:"index;not null"`
	UserID    string `gorm:"size:64;not null"`
	Reason    string `gorm:"size:255"`
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&CommentRecord{}, &CommentReportRecord{})
}
