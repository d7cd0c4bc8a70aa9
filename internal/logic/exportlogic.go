package logic

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/playdecks/insight/internal/analytics"
	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/playdecks/insight/pkg/tabular"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrUnknownDataset = errors.New("unknown export dataset")

// Dataset is a materialized query family ready for download.
type Dataset struct {
	Name   string
	Header []string
	Rows   [][]string
}

// View wraps the dataset in the table engine, which handles CSV encoding.
func (d *Dataset) View() *tabular.View[[]string] {
	cols := make([]tabular.Column[[]string], len(d.Header))
	for i, name := range d.Header {
		idx := i
		cols[i] = tabular.Column[[]string]{
			Key:   name,
			Value: func(row []string) string { return row[idx] },
		}
	}
	return tabular.NewView(d.Rows, cols, 0)
}

type ExportLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewExportLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ExportLogic {
	return &ExportLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func f4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
func itoa(v int) string   { return strconv.Itoa(v) }

// Export materializes one query family, capped at the configured row limit.
// Formats are handled by the caller; this only builds the table.
func (l *ExportLogic) Export(req *types.ExportRequest) (*Dataset, error) {
	d, err := l.build(req)
	if err != nil {
		return nil, err
	}
	if max := l.svcCtx.Config.Export.MaxRows; max > 0 && len(d.Rows) > max {
		d.Rows = d.Rows[:max]
	}
	return d, nil
}

func (l *ExportLogic) build(req *types.ExportRequest) (*Dataset, error) {
	switch req.Dataset {
	case "games":
		return l.exportGames(req.Days)
	case "users":
		return l.exportUsers(req.Limit)
	case "daily":
		return l.exportDaily(req.Days)
	case "social":
		return l.exportSocial(req.Days)
	case "cost-trend":
		return l.exportCostTrend(req.Days)
	case "cost-alerts":
		return l.exportCostAlerts(req.Days)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, req.Dataset)
	}
}

func (l *ExportLogic) snapshots(days int) ([]analytics.Snapshot, error) {
	from, to, err := window(time.Now(), days)
	if err != nil {
		return nil, err
	}
	return l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
}

func (l *ExportLogic) exportGames(days int) (*Dataset, error) {
	snaps, err := l.snapshots(days)
	if err != nil {
		return nil, fmt.Errorf("export games: %w", err)
	}
	d := &Dataset{
		Name: "games",
		Header: []string{
			"game_id", "unique_players", "total_launches", "total_play_time_hours",
			"avg_play_time_minutes", "total_swipes", "total_exits", "exit_rate_percent",
			"net_likes", "net_bookmarks", "total_shares", "total_comments",
			"total_score_attempts", "total_top10_attempts", "top10_attempt_rate_percent",
		},
	}
	for _, g := range analytics.GameRollups(snaps) {
		d.Rows = append(d.Rows, []string{
			g.GameID, itoa(g.UniquePlayers), itoa(g.TotalLaunches), f2(g.TotalPlayTimeHours),
			f2(g.AvgPlayTimeMinutes), itoa(g.TotalSwipes), itoa(g.TotalExits), f2(g.ExitRatePercent),
			itoa(g.NetLikes), itoa(g.NetBookmarks), itoa(g.TotalShares), itoa(g.TotalComments),
			itoa(g.TotalScoreAttempts), itoa(g.TotalTop10Attempts), f2(g.Top10AttemptRatePercent),
		})
	}
	return d, nil
}

func (l *ExportLogic) exportUsers(limit int) (*Dataset, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	snaps, err := l.snapshots(userRollupLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	names, err := l.svcCtx.Moderation.CommentNames(l.ctx)
	if err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	d := &Dataset{
		Name: "users",
		Header: []string{
			"user_id", "pseudo", "snapshot_count", "total_play_time_hours", "total_sessions",
			"avg_session_duration_minutes", "total_purchase_attempts", "total_purchase_successes",
			"total_purchase_cancels", "conversion_rate_percent", "first_snapshot_date",
			"last_snapshot_date", "user_lifetime_days",
		},
	}
	for _, u := range analytics.UserRollups(snaps, names, limit) {
		d.Rows = append(d.Rows, []string{
			u.UserID, u.Pseudo, itoa(u.SnapshotCount), f2(u.TotalPlayTimeHours), itoa(u.TotalSessions),
			f2(u.AvgSessionDurationMinutes), itoa(u.TotalPurchaseAttempts), itoa(u.TotalPurchaseSuccesses),
			itoa(u.TotalPurchaseCancels), f2(u.ConversionRatePercent), u.FirstSnapshotDate,
			u.LastSnapshotDate, itoa(u.UserLifetimeDays),
		})
	}
	return d, nil
}

func (l *ExportLogic) exportDaily(days int) (*Dataset, error) {
	snaps, err := l.snapshots(days)
	if err != nil {
		return nil, fmt.Errorf("export daily: %w", err)
	}
	d := &Dataset{
		Name: "daily",
		Header: []string{
			"date", "unique_players", "total_play_time_hours", "total_sessions",
			"avg_session_duration_minutes", "total_purchase_attempts", "total_purchase_successes",
		},
	}
	for _, r := range analytics.DailyRollups(snaps) {
		d.Rows = append(d.Rows, []string{
			r.Date, itoa(r.UniquePlayers), f2(r.TotalPlayTimeHours), itoa(r.TotalSessions),
			f2(r.AvgSessionDurationMinutes), itoa(r.TotalPurchaseAttempts), itoa(r.TotalPurchaseSuccesses),
		})
	}
	return d, nil
}

func (l *ExportLogic) exportSocial(days int) (*Dataset, error) {
	snaps, err := l.snapshots(days)
	if err != nil {
		return nil, fmt.Errorf("export social: %w", err)
	}
	d := &Dataset{
		Name:   "social",
		Header: []string{"game_id", "social_engagement_rate", "total_bookmarks", "comments_to_players_ratio"},
	}
	for _, r := range analytics.SocialRollups(snaps) {
		d.Rows = append(d.Rows, []string{r.GameID, f4(r.SocialEngagementRate), itoa(r.TotalBookmarks), f4(r.CommentsToPlayersRatio)})
	}
	return d, nil
}

func (l *ExportLogic) costEvents(days int) ([]analytics.CostEvent, error) {
	from, to, err := window(time.Now(), days)
	if err != nil {
		return nil, err
	}
	return l.svcCtx.Costs.ListWindow(l.ctx, from, to)
}

func (l *ExportLogic) exportCostTrend(days int) (*Dataset, error) {
	events, err := l.costEvents(days)
	if err != nil {
		return nil, fmt.Errorf("export cost trend: %w", err)
	}
	d := &Dataset{
		Name:   "cost-trend",
		Header: []string{"metric_date", "metric_type", "total_value", "previous_value", "difference", "percent_change"},
	}
	optional := func(v *float64) string {
		if v == nil {
			return ""
		}
		return f2(*v)
	}
	for _, r := range analytics.DailyCostTrend(events) {
		d.Rows = append(d.Rows, []string{
			r.Date, string(r.Type), f2(r.TotalValue),
			optional(r.PreviousValue), optional(r.Difference), optional(r.PercentChange),
		})
	}
	return d, nil
}

func (l *ExportLogic) exportCostAlerts(days int) (*Dataset, error) {
	events, err := l.costEvents(days)
	if err != nil {
		return nil, fmt.Errorf("export cost alerts: %w", err)
	}
	d := &Dataset{
		Name:   "cost-alerts",
		Header: []string{"metric_date", "metric_type", "total_value", "threshold", "overage_percent"},
	}
	for _, r := range analytics.CostAlerts(events) {
		d.Rows = append(d.Rows, []string{r.Date, string(r.Type), f2(r.TotalValue), f2(r.Threshold), f2(r.OveragePercent)})
	}
	return d, nil
}
