package moderationgorm

import (
	"context"
	"sort"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

// Reporter is one entry of a queue row's first-reports preview.
type Reporter struct {
	UserID     string    `json:"user_id"`
	ReportedAt time.Time `json:"reported_at"`
}

// QueueRow is one reported comment as the moderation queue shows it.
// TrueReports is counted from the report rows, never the cached counter.
type QueueRow struct {
	CommentID      uint       `json:"comment_id"`
	GameID         string     `json:"game_id"`
	ContentPreview string     `json:"content_preview"`
	Content        string     `json:"content"`
	AuthorID       string     `json:"author_id"`
	AuthorName     string     `json:"author_name"`
	AuthorAvatar   string     `json:"author_avatar,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	HiddenAt       *time.Time `json:"hidden_at,omitempty"`
	Likes          int        `json:"likes"`
	Dislikes       int        `json:"dislikes"`
	Replies        int        `json:"replies"`
	TrueReports    int        `json:"true_reports"`
	CachedReports  int        `json:"cached_reports"`
	IsHidden       bool       `json:"is_hidden"`
	Status         string     `json:"status"`
	LatestReport   time.Time  `json:"latest_report_at"`
	FirstReports   []Reporter `json:"first_reports"`
}

const previewLen = 100

// contentPreview keeps the first previewLen characters, counting runes so a
// multi-byte sequence is never split.
func contentPreview(s string) string {
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	return string([]rune(s)[:previewLen])
}

// Queue lists every non-deleted comment with at least one report, ordered by
// true report count descending, then latest report descending. The report
// aggregation happens in Go over the fetched rows so the query stays portable
// across the postgres and sqlite drivers.
func (r *Repo) Queue(ctx context.Context) ([]QueueRow, error) {
	var comments []CommentRecord
	if err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&comments).Error; err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []QueueRow{}, nil
	}
	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	var reports []CommentReportRecord
	if err := r.db.WithContext(ctx).
		Where("comment_id IN ?", ids).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	byComment := map[uint][]CommentReportRecord{}
	for _, rep := range reports {
		byComment[rep.CommentID] = append(byComment[rep.CommentID], rep)
	}

	out := make([]QueueRow, 0, len(byComment))
	for _, c := range comments {
		reps := byComment[c.ID]
		if len(reps) == 0 {
			continue
		}
		row := QueueRow{
			CommentID:      c.ID,
			GameID:         c.GameID,
			ContentPreview: contentPreview(c.Content),
			Content:        c.Content,
			AuthorID:       c.UserID,
			AuthorName:     c.Username,
			AuthorAvatar:   c.UserAvatarURL,
			CreatedAt:      c.CreatedAt,
			HiddenAt:       c.HiddenAt,
			Likes:          c.LikesCount,
			Dislikes:       c.DislikesCount,
			Replies:        c.RepliesCount,
			TrueReports:    len(reps),
			CachedReports:  c.ReportsCount,
			IsHidden:       c.IsHidden,
			Status:         Status(c.IsHidden, len(reps)),
			LatestReport:   reps[0].CreatedAt,
		}
		for _, rep := range reps {
			if len(row.FirstReports) == 5 {
				break
			}
			row.FirstReports = append(row.FirstReports, Reporter{UserID: rep.UserID, ReportedAt: rep.CreatedAt})
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TrueReports != out[j].TrueReports {
			return out[i].TrueReports > out[j].TrueReports
		}
		return out[i].LatestReport.After(out[j].LatestReport)
	})
	return out, nil
}

// Hide marks a comment hidden and stamps hidden_at. Idempotent.
func (r *Repo) Hide(ctx context.Context, commentID uint, now time.Time) error {
	return r.db.WithContext(ctx).Model(&CommentRecord{}).
		Where("id = ?", commentID).
		Updates(map[string]any{"is_hidden": true, "hidden_at": now}).Error
}

// Unhide clears the hidden flag and hidden_at. Idempotent.
func (r *Repo) Unhide(ctx context.Context, commentID uint) error {
	return r.db.WithContext(ctx).Model(&CommentRecord{}).
		Where("id = ?", commentID).
		Updates(map[string]any{"is_hidden": false, "hidden_at": nil}).Error
}

// Delete hard-deletes a comment and its report rows. Irreversible.
func (r *Repo) Delete(ctx context.Context, commentID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Unscoped().Delete(&CommentReportRecord{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&CommentRecord{}, commentID).Error
	})
}

// CommentNames maps each user id to the username on their most recent
// comment, the display-name fallback for users whose snapshots carry no
// pseudo.
func (r *Repo) CommentNames(ctx context.Context) (map[string]string, error) {
	var comments []CommentRecord
	if err := r.db.WithContext(ctx).
		Where("username <> ''").
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	// Ascending scan: later comments overwrite earlier ones.
	out := map[string]string{}
	for _, c := range comments {
		out[c.UserID] = c.Username
	}
	return out, nil
}

// CreateComment and Report exist for seeding and tests; the player-facing
// product owns these writes in production.
func (r *Repo) CreateComment(ctx context.Context, c *CommentRecord) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repo) Report(ctx context.Context, rep *CommentReportRecord) error {
	return r.db.WithContext(ctx).Create(rep).Error
}
