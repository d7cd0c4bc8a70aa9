package snapshotsgorm

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestListWindowBoundsAndDecode(t *testing.T) {
	r := New(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	rows := []*UserDailySnapshot{
		{UserID: "u1", SnapshotDate: base.AddDate(0, 0, -1), CumulativePlayTimeSeconds: 10},
		{UserID: "u1", SnapshotDate: base, CumulativePlayTimeSeconds: 20,
			Metrics: []byte(`{"sessionCount": 3, "gameLaunches": {"snake": 2}}`)},
		{UserID: "u2", SnapshotDate: base.AddDate(0, 0, 6), CumulativePlayTimeSeconds: 30,
			Metrics: []byte(`{broken`)},
		{UserID: "u3", SnapshotDate: base.AddDate(0, 0, 7), CumulativePlayTimeSeconds: 40},
	}
	for _, row := range rows {
		if err := r.Insert(ctx, row); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := r.ListWindow(ctx, base, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("list window: %v", err)
	}
	// [from, to): the day before and the day at `to` are both excluded.
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0].Metrics.SessionCount != 3 || got[0].Metrics.GameLaunches["snake"] != 2 {
		t.Fatalf("decoded bag = %+v", got[0].Metrics)
	}
	// Malformed blob decodes to a zero bag, not an error.
	if got[1].UserID != "u2" || got[1].Metrics.SessionCount != 0 {
		t.Fatalf("malformed row = %+v", got[1])
	}
}
