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

type AnalyticsGamesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsGamesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsGamesLogic {
	return &AnalyticsGamesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsGamesLogic) AnalyticsGames(req *types.WindowRequest) (*types.GamesResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	snaps, err := l.svcCtx.Snapshots.ListWindow(l.ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("game rollup: %w", err)
	}
	return &types.GamesResponse{
		Window: windowMeta(req.Days, from, to),
		Games:  analytics.GameRollups(snaps),
	}, nil
}
