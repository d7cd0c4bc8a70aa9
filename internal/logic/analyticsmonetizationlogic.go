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

type AnalyticsMonetizationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsMonetizationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsMonetizationLogic {
	return &AnalyticsMonetizationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsMonetizationLogic) AnalyticsMonetization(req *types.WindowRequest) (*types.MonetizationResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("monetization: %w", err)
	}
	return &types.MonetizationResponse{
		Window:  windowMeta(req.Days, from, to),
		Summary: analytics.Monetization(snaps),
	}, nil
}
