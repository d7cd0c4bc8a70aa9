package configsgorm

import (
	"context"
	"testing"

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

func TestUpsertLastWriteWins(t *testing.T) {
	r := New(newTestDB(t))
	ctx := context.Background()

	first, err := r.Upsert(ctx, "maintenance_mode", "off", "kill switch")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second, err := r.Upsert(ctx, "maintenance_mode", "on", "kill switch")
	if err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if second.ConfigValue != "on" {
		t.Fatalf("value = %q, want last write", second.ConfigValue)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a second row")
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatalf("updated_at must refresh on rewrite")
	}

	rows, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
}

func TestListOrderedByKey(t *testing.T) {
	r := New(newTestDB(t))
	ctx := context.Background()

	for _, k := range []string{"zeta", "alpha", "mid"} {
		if _, err := r.Upsert(ctx, k, "v", ""); err != nil {
			t.Fatalf("upsert %s: %v", k, err)
		}
	}
	rows, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, k := range want {
		if rows[i].ConfigKey != k {
			t.Fatalf("rows[%d] = %q, want %q", i, rows[i].ConfigKey, k)
		}
	}
}

func TestDelete(t *testing.T) {
	r := New(newTestDB(t))
	ctx := context.Background()

	if _, err := r.Upsert(ctx, "gone", "v", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := r.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(ctx, "gone"); err == nil {
		t.Fatalf("get after delete must fail")
	}
}
