package moderationgorm

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB returns a sqlite in-memory DB.
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

func seedComment(t *testing.T, r *Repo, userID, username, content string, reports int) uint {
	t.Helper()
	ctx := context.Background()
	c := &CommentRecord{GameID: "snake", UserID: userID, Username: username, Content: content}
	if err := r.CreateComment(ctx, c); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	for i := 0; i < reports; i++ {
		rep := &CommentReportRecord{CommentID: c.ID, UserID: "reporter", Reason: "spam"}
		if err := r.Report(ctx, rep); err != nil {
			t.Fatalf("report: %v", err)
		}
	}
	return c.ID
}

func TestQueueFiltersAndOrders(t *testing.T) {
	r := New(newTestDB(t))
	ctx := context.Background()

	seedComment(t, r, "u1", "alice", "clean comment", 0) // unreported, excluded
	lowID := seedComment(t, r, "u2", "bob", "mild", 1)
	highID := seedComment(t, r, "u3", "carol", "nasty", 6)

	rows, err := r.Queue(ctx)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (unreported comments excluded)", len(rows))
	}
	if rows[0].CommentID != highID || rows[1].CommentID != lowID {
		t.Fatalf("order = %d,%d, want true report count desc", rows[0].CommentID, rows[1].CommentID)
	}
	if rows[0].TrueReports != 6 || rows[0].Status != SeverityCritical {
		t.Fatalf("top row = %+v, want 6 reports / critical", rows[0])
	}
	if rows[1].Status != SeverityFlagged {
		t.Fatalf("low row status = %q, want flagged", rows[1].Status)
	}
	if len(rows[0].FirstReports) != 5 {
		t.Fatalf("first reports = %d, want capped at 5", len(rows[0].FirstReports))
	}
}

func TestQueueUsesTrueCountNotCache(t *testing.T) {
	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()

	id := seedComment(t, r, "u1", "alice", "x", 5)
	// Stale trigger cache says 1; the queue must still classify as critical.
	if err := db.Model(&CommentRecord{}).Where("id = ?", id).Update("reports_count", 1).Error; err != nil {
		t.Fatalf("update cache: %v", err)
	}
	rows, err := r.Queue(ctx)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if rows[0].TrueReports != 5 || rows[0].CachedReports != 1 {
		t.Fatalf("true/cached = %d/%d, want 5/1", rows[0].TrueReports, rows[0].CachedReports)
	}
	if rows[0].Status != SeverityCritical {
		t.Fatalf("status = %q, want critical from the true count", rows[0].Status)
	}
}

func TestHideUnhideRoundTrip(t *testing.T) {
	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()

	id := seedComment(t, r, "u1", "alice", "x", 2)
	if err := r.Hide(ctx, id, time.Now()); err != nil {
		t.Fatalf("hide: %v", err)
	}
	rows, _ := r.Queue(ctx)
	if !rows[0].IsHidden || rows[0].HiddenAt == nil || rows[0].Status != "hidden" {
		t.Fatalf("after hide: %+v", rows[0])
	}

	if err := r.Unhide(ctx, id); err != nil {
		t.Fatalf("unhide: %v", err)
	}
	rows, _ = r.Queue(ctx)
	if rows[0].IsHidden || rows[0].HiddenAt != nil {
		t.Fatalf("after unhide hidden flags must be cleared: %+v", rows[0])
	}
	if rows[0].Status != SeverityAttention {
		t.Fatalf("status = %q, want attention restored", rows[0].Status)
	}
}

func TestDeleteRemovesFromQueue(t *testing.T) {
	db := newTestDB(t)
	r := New(db)
	ctx := context.Background()

	id := seedComment(t, r, "u1", "alice", "x", 3)
	if err := r.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rows, err := r.Queue(ctx)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("deleted comment still in queue: %+v", rows)
	}
	var n int64
	if err := db.Model(&CommentReportRecord{}).Where("comment_id = ?", id).Count(&n).Error; err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if n != 0 {
		t.Fatalf("report rows = %d, want cascade delete", n)
	}
}

func TestSeverityMonotonic(t *testing.T) {
	rank := map[string]int{
		SeverityFlagged:   0,
		SeverityAttention: 1,
		SeverityCritical:  2,
		SeverityAutoHide:  3,
	}
	prev := -1
	for count := 0; count <= 12; count++ {
		cur := rank[Severity(count)]
		if cur < prev {
			t.Fatalf("severity dropped at count %d", count)
		}
		prev = cur
	}
	if Severity(1) != SeverityFlagged || Severity(2) != SeverityAttention ||
		Severity(5) != SeverityCritical || Severity(10) != SeverityAutoHide {
		t.Fatalf("tier boundaries moved")
	}
}

func TestQueuePreviewKeepsRuneBoundaries(t *testing.T) {
	r := New(newTestDB(t))
	ctx := context.Background()

	long := strings.Repeat("é", 120)
	seedComment(t, r, "u1", "alice", long, 1)

	rows, err := r.Queue(ctx)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	got := rows[0].ContentPreview
	if !utf8.ValidString(got) {
		t.Fatalf("preview is not valid utf-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 100 {
		t.Fatalf("preview runes = %d, want 100", n)
	}
	if got != strings.Repeat("é", 100) {
		t.Fatalf("preview = %q, want first 100 characters", got)
	}

	short := "court"
	seedComment(t, r, "u2", "bob", short, 1)
	rows, _ = r.Queue(ctx)
	for _, row := range rows {
		if row.Content == short && row.ContentPreview != short {
			t.Fatalf("short content must pass through untouched: %q", row.ContentPreview)
		}
	}
}

func TestCommentNamesLatestWins(t *testing.T) {
	r := New(newTestDB(t))
	ctx := context.Background()

	seedComment(t, r, "u1", "old-name", "first", 0)
	seedComment(t, r, "u1", "new-name", "second", 0)
	seedComment(t, r, "u2", "", "anon", 0)

	names, err := r.CommentNames(ctx)
	if err != nil {
		t.Fatalf("comment names: %v", err)
	}
	if names["u1"] != "new-name" {
		t.Fatalf("u1 = %q, want most recent username", names["u1"])
	}
	if _, ok := names["u2"]; ok {
		t.Fatalf("empty usernames must not map")
	}
}
