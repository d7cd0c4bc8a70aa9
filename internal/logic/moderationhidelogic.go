package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ModerationHideLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewModerationHideLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ModerationHideLogic {
	return &ModerationHideLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ModerationHideLogic) ModerationHide(req *types.CommentActionRequest) (*types.CommentActionResponse, error) {
	if err := l.svcCtx.Moderation.Hide(l.ctx, req.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("hide comment %d: %w", req.ID, err)
	}
	l.Infof("comment %d hidden", req.ID)
	return &types.CommentActionResponse{Success: true}, nil
}
