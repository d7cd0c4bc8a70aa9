package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/playdecks/insight/internal/analytics"
	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

// The per-user leaderboard spans the whole snapshot history rather than a
// trailing window, so it takes a row limit instead of a day count.
const userRollupLookbackDays = 3650

type AnalyticsUsersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsUsersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsUsersLogic {
	return &AnalyticsUsersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsUsersLogic) AnalyticsUsers(req *types.TopUsersRequest) (*types.UsersResponse, error) {
	if req.Limit <= 0 {
		return nil, ErrInvalidLimit
	}
	from, to, err := window(time.Now(), userRollupLookbackDays)
	if err != nil {
		return nil, err
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("user rollup: %w", err)
	}
	names, err := l.svcCtx.Moderation.CommentNames(l.ctx)
	if err != nil {
		return nil, fmt.Errorf("user rollup names: %w", err)
	}
	return &types.UsersResponse{
		Limit: req.Limit,
		Users: analytics.UserRollups(snaps, names, req.Limit),
	}, nil
}
