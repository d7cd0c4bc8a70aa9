package types

import (
	"github.com/playdecks/insight/internal/analytics"
	moderationgorm "github.com/playdecks/insight/internal/repo/gorm/moderation"
)

type (
	WindowRequest struct {
		Days int `form:"days,default=7"`
	}

	TopUsersRequest struct {
		Limit int `form:"limit,default=50"`
	}

	// Window echoes the resolved aggregation window on every analytics
	// response so the dashboard can label its charts.
	Window struct {
		Days int    `json:"days"`
		From string `json:"from"`
		To   string `json:"to"`
	}

	KPIResponse struct {
		Window  Window               `json:"window"`
		Summary analytics.KPISummary `json:"summary"`
	}

	GamesResponse struct {
		Window Window                 `json:"window"`
		Games  []analytics.GameRollup `json:"games"`
	}

	UsersResponse struct {
		Limit int                    `json:"limit"`
		Users []analytics.UserRollup `json:"users"`
	}

	DailyResponse struct {
		Window Window                  `json:"window"`
		Days   []analytics.DailyRollup `json:"days"`
	}

	FlowResponse struct {
		Window Window                  `json:"window"`
		Games  []analytics.GameFlowRow `json:"games"`
	}

	SocialResponse struct {
		Window Window                `json:"window"`
		Games  []analytics.SocialRow `json:"games"`
	}

	MonetizationResponse struct {
		Window  Window                        `json:"window"`
		Summary analytics.MonetizationSummary `json:"summary"`
	}

	DashboardResponse struct {
		Window Window                  `json:"window"`
		KPIs   analytics.KPISummary    `json:"kpis"`
		Daily  []analytics.DailyRollup `json:"daily"`
		Games  []analytics.GameRollup  `json:"games"`
	}

	CostOverviewResponse struct {
		Window   Window                 `json:"window"`
		Overview analytics.CostOverview `json:"overview"`
	}

	CostEfficiencyResponse struct {
		Window Window                        `json:"window"`
		Games  []analytics.GameEfficiencyRow `json:"games"`
	}

	CostBandwidthResponse struct {
		Window Window                            `json:"window"`
		Games  []analytics.BandwidthIntensityRow `json:"games"`
	}

	CostChurnResponse struct {
		Window Window                   `json:"window"`
		Games  []analytics.ChurnCostRow `json:"games"`
	}

	CostAuthEfficiencyResponse struct {
		Window Window                        `json:"window"`
		Days   []analytics.AuthEfficiencyRow `json:"days"`
	}

	CostTrendResponse struct {
		Window Window                        `json:"window"`
		Rows   []analytics.DailyCostTrendRow `json:"rows"`
	}

	CostAlertsResponse struct {
		Window Window                   `json:"window"`
		Alerts []analytics.CostAlertRow `json:"alerts"`
	}

	ModerationQueueResponse struct {
		Comments []moderationgorm.QueueRow `json:"comments"`
		Total    int                       `json:"total"`
	}

	CommentActionRequest struct {
		ID uint `path:"id"`
	}

	CommentActionResponse struct {
		Success bool `json:"success"`
	}

	ConfigEntry struct {
		Key         string `json:"config_key"`
		Value       string `json:"config_value"`
		Description string `json:"description,omitempty"`
		UpdatedAt   string `json:"updated_at"`
	}

	ConfigListResponse struct {
		Configs []ConfigEntry `json:"configs"`
	}

	ConfigUpsertRequest struct {
		Key         string `path:"key"`
		Value       string `json:"config_value"`
		Description string `json:"description,optional"`
	}

	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}

	MeResponse struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}

	ExportRequest struct {
		Dataset string `path:"dataset"`
		Days    int    `form:"days,default=7"`
		Limit   int    `form:"limit,default=50"`
		Format  string `form:"format,default=csv"`
	}

	HealthResponse struct {
		Status string `json:"status"`
		DB     string `json:"db"`
	}
)
