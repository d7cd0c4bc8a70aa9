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

type CostTrendLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCostTrendLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CostTrendLogic {
	return &CostTrendLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CostTrendLogic) CostTrend(req *types.WindowRequest) (*types.CostTrendResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	events, err := l.svcCtx.Costs.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("cost trend: %w", err)
	}
	return &types.CostTrendResponse{
		Window: windowMeta(req.Days, from, to),
		Rows:   analytics.DailyCostTrend(events),
	}, nil
}
