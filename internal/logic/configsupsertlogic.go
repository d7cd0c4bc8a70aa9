package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrEmptyConfigKey = errors.New("config key must not be empty")

type ConfigsUpsertLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewConfigsUpsertLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ConfigsUpsertLogic {
	return &ConfigsUpsertLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ConfigsUpsert writes by key, last write wins. No optimistic concurrency:
// a concurrent writer's value is silently overwritten.
func (l *ConfigsUpsertLogic) ConfigsUpsert(req *types.ConfigUpsertRequest) (*types.ConfigEntry, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, ErrEmptyConfigKey
	}
	row, err := l.svcCtx.Configs.Upsert(l.ctx, key, req.Value, req.Description)
	if err != nil {
		return nil, fmt.Errorf("upsert config %s: %w", key, err)
	}
	return &types.ConfigEntry{
		Key:         row.ConfigKey,
		Value:       row.ConfigValue,
		Description: row.Description,
		UpdatedAt:   row.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
