package configsgorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ db *gorm.DB }

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

// List returns every config entry ordered by key.
func (r *Repo) List(ctx context.Context) ([]ConfigRecord, error) {
	var rows []ConfigRecord
	if err := r.db.WithContext(ctx).Order("config_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get fetches one entry by key.
func (r *Repo) Get(ctx context.Context, key string) (*ConfigRecord, error) {
	var row ConfigRecord
	if err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert writes by key, last write wins. The updated_at stamp refreshes on
// every write, including no-op value rewrites.
func (r *Repo) Upsert(ctx context.Context, key, value, description string) (*ConfigRecord, error) {
	row := ConfigRecord{ConfigKey: key, ConfigValue: value, Description: description}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value", "description", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, key)
}

// Delete removes an entry by key.
func (r *Repo) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("config_key = ?", key).Unscoped().Delete(&ConfigRecord{}).Error
}
