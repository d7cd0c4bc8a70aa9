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

type AnalyticsSocialLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsSocialLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsSocialLogic {
	return &AnalyticsSocialLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsSocialLogic) AnalyticsSocial(req *types.WindowRequest) (*types.SocialResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("social rollup: %w", err)
	}
	return &types.SocialResponse{
		Window: windowMeta(req.Days, from, to),
		Games:  analytics.SocialRollups(snaps),
	}, nil
}
