package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/playdecks/insight/internal/analytics"
	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

type CostEfficiencyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCostEfficiencyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CostEfficiencyLogic {
	return &CostEfficiencyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CostEfficiencyLogic) CostEfficiency(req *types.WindowRequest) (*types.CostEfficiencyResponse, error) {
	from, to, err := window(time.Now(), req.Days)
	if err != nil {
		return nil, err
	}
	events, snaps, err := fetchCostInputs(l.ctx, l.svcCtx, from, to)
	if err != nil {
		return nil, fmt.Errorf("cost efficiency: %w", err)
	}
	return &types.CostEfficiencyResponse{
		Window: windowMeta(req.Days, from, to),
		Games:  analytics.GameEfficiency(events, snaps),
	}, nil
}

// fetchCostInputs loads the two input streams concurrently; every cost
// family that joins costs against snapshots goes through it.
func fetchCostInputs(ctx context.Context, svcCtx *svc.ServiceContext, from, to time.Time) ([]analytics.CostEvent, []analytics.Snapshot, error) {
	var (
		events []analytics.CostEvent
		snaps  []analytics.Snapshot
	)
	err := mr.Finish(
		func() (err error) {
			events, err = svcCtx.Costs.ListWindow(ctx, from, to)
			return err
		},
		func() (err error) {
			snaps, err = svcCtx.Snapshots.ListWindow(ctx, from, to)
			return err
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return events, snaps, nil
}
