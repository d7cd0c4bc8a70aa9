package costsgorm

import (
	"context"
	"time"

	"github.com/playdecks/insight/internal/analytics"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

// ListWindow returns every cost sample with from <= recorded_at < to.
func (r *Repo) ListWindow(ctx context.Context, from, to time.Time) ([]analytics.CostEvent, error) {
	var rows []CostMetricRecord
	err := r.db.WithContext(ctx).
		Where("recorded_at >= ? AND recorded_at < ?", from, to).
		Order("recorded_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]analytics.CostEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.CostEvent{
			Type:   analytics.MetricType(row.MetricType),
			Value:  row.MetricValue,
			GameID: row.GameID,
			At:     row.RecordedAt,
		})
	}
	return out, nil
}

// Insert records a cost sample, for seeding and tests.
func (r *Repo) Insert(ctx context.Context, row *CostMetricRecord) error {
	return r.db.WithContext(ctx).Create(row).Error
}
