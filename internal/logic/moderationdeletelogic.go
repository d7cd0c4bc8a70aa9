package logic

import (
	"context"
	"fmt"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ModerationDeleteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewModerationDeleteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ModerationDeleteLogic {
	return &ModerationDeleteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ModerationDeleteLogic) ModerationDelete(req *types.CommentActionRequest) (*types.CommentActionResponse, error) {
	if err := l.svcCtx.Moderation.Delete(l.ctx, req.ID); err != nil {
		return nil, fmt.Errorf("delete comment %d: %w", req.ID, err)
	}
	l.Infof("comment %d deleted", req.ID)
	return &types.CommentActionResponse{Success: true}, nil
}
