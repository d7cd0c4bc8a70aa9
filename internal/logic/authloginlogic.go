package logic

import (
	"context"
	"errors"
	"strings"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrBadCredentials     = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts, retry later")
	ErrMissingCredentials = errors.New("username and password are required")
)

type AuthLoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAuthLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuthLoginLogic {
	return &AuthLoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AuthLoginLogic) AuthLogin(req *types.LoginRequest, remoteIP string) (*types.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}
	if !l.svcCtx.AllowLogin(remoteIP, username) {
		l.Infof("login rate limited: %s from %s", username, remoteIP)
		return nil, ErrTooManyAttempts
	}
	op, err := l.svcCtx.Operators.Verify(l.ctx, username, req.Password)
	if err != nil {
		l.Infof("login rejected: %s from %s", username, remoteIP)
		return nil, ErrBadCredentials
	}
	tok, err := l.svcCtx.JWT.Sign(op.Username, op.Role, l.svcCtx.TokenTTL())
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{Token: tok, Username: op.Username, Role: op.Role}, nil
}
