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

type CostOverviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCostOverviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CostOverviewLogic {
	return &CostOverviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CostOverviewLogic) CostOverview(req *types.WindowRequest) (*types.CostOverviewResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	current, err := l.svcCtx.Costs.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("cost overview: %w", err)
	}
	// Trend baseline: the equally sized window immediately before this one.
	prevFrom := from.AddDate(0, 0, -req.Days)
	previous, err := l.svcCtx.Costs.ListWindow(l.ctx, prevFrom, from)
	if err != nil {
		return nil, fmt.Errorf("cost overview baseline: %w", err)
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("cost overview players: %w", err)
	}
	players := analytics.KPIs(snaps).UniquePlayers
	return &types.CostOverviewResponse{
		Window:   windowMeta(req.Days, from, to),
		Overview: analytics.ComputeCostOverview(current, previous, players),
	}, nil
}
