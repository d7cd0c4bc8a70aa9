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

type CostBandwidthLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCostBandwidthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CostBandwidthLogic {
	return &CostBandwidthLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CostBandwidthLogic) CostBandwidth(req *types.WindowRequest) (*types.CostBandwidthResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	events, snaps, err := fetchCostInputs(l.ctx, l.svcCtx, from, to)
	if err != nil {
		return nil, fmt.Errorf("bandwidth intensity: %w", err)
	}
	return &types.CostBandwidthResponse{
		Window: windowMeta(req.Days, from, to),
		Games:  analytics.BandwidthIntensity(events, snaps),
	}, nil
}
