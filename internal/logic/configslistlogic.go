package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ConfigsListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewConfigsListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ConfigsListLogic {
	return &ConfigsListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ConfigsListLogic) ConfigsList() (*types.ConfigListResponse, error) {
	rows, err := l.svcCtx.Configs.List(l.ctx)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	resp := &types.ConfigListResponse{Configs: make([]types.ConfigEntry, 0, len(rows))}
	for _, row := range rows {
		resp.Configs = append(resp.Configs, types.ConfigEntry{
			Key:         row.ConfigKey,
			Value:       row.ConfigValue,
			Description: row.Description,
			UpdatedAt:   row.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}
