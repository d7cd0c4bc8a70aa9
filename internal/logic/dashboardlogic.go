package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/playdecks/insight/internal/analytics"
	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

type DashboardLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDashboardLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DashboardLogic {
	return &DashboardLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Dashboard fans out the landing page's independent queries and renders once
// all return or the first one fails. The queries share one resolved window
// but are not transactionally consistent with each other.
func (l *DashboardLogic) Dashboard(req *types.WindowRequest) (*types.DashboardResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	resp := &types.DashboardResponse{Window: windowMeta(req.Days, from, to)}
	err = mr.Finish(
		func() error {
			snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
			if err != nil {
				return fmt.Errorf("dashboard kpis: %w", err)
			}
			resp.KPIs = analytics.KPIs(snaps)
			return nil
		},
		func() error {
			snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
			if err != nil {
				return fmt.Errorf("dashboard daily: %w", err)
			}
			resp.Daily = analytics.DailyRollups(snaps)
			return nil
		},
		func() error {
			snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
			if err != nil {
				return fmt.Errorf("dashboard games: %w", err)
			}
			resp.Games = analytics.GameRollups(snaps)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
