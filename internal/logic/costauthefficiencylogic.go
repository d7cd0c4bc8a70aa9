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

type CostAuthEfficiencyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCostAuthEfficiencyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CostAuthEfficiencyLogic {
	return &CostAuthEfficiencyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CostAuthEfficiencyLogic) CostAuthEfficiency(req *types.WindowRequest) (*types.CostAuthEfficiencyResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	events, snaps, err := fetchCostInputs(l.ctx, l.svcCtx, from, to)
	if err != nil {
		return nil, fmt.Errorf("auth efficiency: %w", err)
	}
	return &types.CostAuthEfficiencyResponse{
		Window: windowMeta(req.Days, from, to),
		Days:   analytics.AuthEfficiency(events, snaps),
	}, nil
}
