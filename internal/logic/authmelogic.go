package logic

import (
	"context"

	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type AuthMeLogic struct {
	logx.Logger
	ctx context.Context
}

func NewAuthMeLogic(ctx context.Context) *AuthMeLogic {
	return &AuthMeLogic{Logger: logx.WithContext(ctx), ctx: ctx}
}

func (l *AuthMeLogic) AuthMe(username, role string) (*types.MeResponse, error) {
	return &types.MeResponse{Username: username, Role: role}, nil
}
