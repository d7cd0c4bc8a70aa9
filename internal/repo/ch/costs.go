// Package chcosts reads the cost metric stream from ClickHouse for
// deployments where the samples land there instead of the relational store.
// It satisfies the same window-read contract as the GORM cost repository.
package chcosts

import (
	"context"
	"fmt"
	"time"

	clickhouse "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/playdecks/insight/internal/analytics"
)

type Repo struct{ conn clickhouse.Conn }

func New(conn clickhouse.Conn) *Repo { return &Repo{conn: conn} }

// Open connects from a clickhouse://host:port/db DSN.
func Open(dsn string) (clickhouse.Conn, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("connect clickhouse: %w", err)
	}
	return conn, nil
}

// ListWindow returns every cost sample with from <= recorded_at < to.
func (r *Repo) ListWindow(ctx context.Context, from, to time.Time) ([]analytics.CostEvent, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT metric_type, metric_value, game_id, recorded_at FROM insight.cost_metrics WHERE recorded_at >= ? AND recorded_at < ? ORDER BY recorded_at",
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []analytics.CostEvent
	for rows.Next() {
		var (
			typ    string
			value  float64
			gameID string
			at     time.Time
		)
		if err := rows.Scan(&typ, &value, &gameID, &at); err != nil {
			return nil, err
		}
		out = append(out, analytics.CostEvent{
			Type:   analytics.MetricType(typ),
			Value:  value,
			GameID: gameID,
			At:     at,
		})
	}
	return out, rows.Err()
}
