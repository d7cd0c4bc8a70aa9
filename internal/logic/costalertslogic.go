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

type CostAlertsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCostAlertsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CostAlertsLogic {
	return &CostAlertsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CostAlertsLogic) CostAlerts(req *types.WindowRequest) (*types.CostAlertsResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	events, err := l.svcCtx.Costs.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("cost alerts: %w", err)
	}
	return &types.CostAlertsResponse{
		Window: windowMeta(req.Days, from, to),
		Alerts: analytics.CostAlerts(events),
	}, nil
}
