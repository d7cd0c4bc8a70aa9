package logic

import (
	"context"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type HealthzLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHealthzLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HealthzLogic {
	return &HealthzLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HealthzLogic) Healthz() (*types.HealthResponse, error) {
	resp := &types.HealthResponse{Status: "ok", DB: "ok"}
	sqlDB, err := l.svcCtx.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(l.ctx)
	}
	if err != nil {
		resp.Status = "degraded"
		resp.DB = err.Error()
	}
	return resp, nil
}
