package logic

import (
	"context"
	"fmt"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ModerationUnhideLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewModerationUnhideLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ModerationUnhideLogic {
	return &ModerationUnhideLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ModerationUnhideLogic) ModerationUnhide(req *types.CommentActionRequest) (*types.CommentActionResponse, error) {
	if err := l.svcCtx.Moderation.Unhide(l.ctx, req.ID); err != nil {
		return nil, fmt.Errorf("unhide comment %d: %w", req.ID, err)
	}
	l.Infof("comment %d unhidden", req.ID)
	return &types.CommentActionResponse{Success: true}, nil
}
