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

type CostChurnLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCostChurnLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CostChurnLogic {
	return &CostChurnLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CostChurnLogic) CostChurn(req *types.WindowRequest) (*types.CostChurnResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	events, snaps, err := fetchCostInputs(l.ctx, l.svcCtx, from, to)
	if err != nil {
		return nil, fmt.Errorf("churn cost: %w", err)
	}
	return &types.CostChurnResponse{
		Window: windowMeta(req.Days, from, to),
		Games:  analytics.ChurnCost(events, snaps),
	}, nil
}
