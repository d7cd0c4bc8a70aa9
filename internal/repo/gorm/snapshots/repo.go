package snapshotsgorm

import (
	"context"
	"time"

	"github.com/playdecks/insight/internal/analytics"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

// ListWindow returns every snapshot with from <= snapshot_date < to, decoded
// into the aggregation layer's input shape. A malformed metrics blob decodes
// to a zero bag instead of failing the whole window.
func (r *Repo) ListWindow(ctx context.Context, from, to time.Time) ([]analytics.Snapshot, error) {
	var rows []UserDailySnapshot
	err := r.db.WithContext(ctx).
		Where("snapshot_date >= ? AND snapshot_date < ?", from, to).
		Order("snapshot_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]analytics.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.Snapshot{
			UserID:                row.UserID,
			Date:                  row.SnapshotDate,
			CumulativePlaySeconds: row.CumulativePlayTimeSeconds,
			Metrics:               analytics.ParseMetricBag(row.Metrics),
		})
	}
	return out, nil
}

// Insert records a snapshot row. The ingestion pipeline owns writes in
// production; this exists for seeding and tests.
func (r *Repo) Insert(ctx context.Context, row *UserDailySnapshot) error {
	return r.db.WithContext(ctx).Create(row).Error
}
