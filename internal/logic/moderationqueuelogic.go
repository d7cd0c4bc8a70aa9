package logic

import (
	"context"
	"fmt"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ModerationQueueLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewModerationQueueLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ModerationQueueLogic {
	return &ModerationQueueLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ModerationQueueLogic) ModerationQueue() (*types.ModerationQueueResponse, error) {
	rows, err := l.svcCtx.Moderation.Queue(l.ctx)
	if err != nil {
		return nil, fmt.Errorf("moderation queue: %w", err)
	}
	return &types.ModerationQueueResponse{Comments: rows, Total: len(rows)}, nil
}
