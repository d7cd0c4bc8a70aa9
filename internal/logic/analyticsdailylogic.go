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

type AnalyticsDailyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsDailyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsDailyLogic {
	return &AnalyticsDailyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsDailyLogic) AnalyticsDaily(req *types.WindowRequest) (*types.DailyResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily rollup: %w", err)
	}
	return &types.DailyResponse{
		Window: windowMeta(req.Days, from, to),
		Days:   analytics.DailyRollups(snaps),
	}, nil
}
