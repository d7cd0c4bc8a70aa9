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

type AnalyticsFlowLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsFlowLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsFlowLogic {
	return &AnalyticsFlowLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsFlowLogic) AnalyticsFlow(req *types.WindowRequest) (*types.FlowResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("game flow: %w", err)
	}
	return &types.FlowResponse{
		Window: windowMeta(req.Days, from, to),
		Games:  analytics.GameFlow(snaps),
	}, nil
}
