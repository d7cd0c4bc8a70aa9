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

type AnalyticsKPIsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsKPIsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsKPIsLogic {
	return &AnalyticsKPIsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsKPIsLogic) AnalyticsKPIs(req *types.WindowRequest) (*types.KPIResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("kpi summary: %w", err)
	}
	return &types.KPIResponse{
		Window:  windowMeta(req.Days, from, to),
		Summary: analytics.KPIs(snaps),
	}, nil
}
