package handler

import (
	"net/http"

	"github.com/playdecks/insight/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/dashboard",
				Handler: DashboardHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/analytics/kpis",
				Handler: AnalyticsKPIsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/analytics/games",
				Handler: AnalyticsGamesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/analytics/users",
				Handler: AnalyticsUsersHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/analytics/daily",
				Handler: AnalyticsDailyHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/analytics/flow",
				Handler: AnalyticsFlowHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/analytics/social",
				Handler: AnalyticsSocialHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/analytics/monetization",
				Handler: AnalyticsMonetizationHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/costs/overview",
				Handler: CostOverviewHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/costs/efficiency",
				Handler: CostEfficiencyHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/costs/bandwidth",
				Handler: CostBandwidthHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/costs/churn",
				Handler: CostChurnHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/costs/auth-efficiency",
				Handler: CostAuthEfficiencyHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/costs/trend",
				Handler: CostTrendHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/costs/alerts",
				Handler: CostAlertsHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/moderation/comments",
				Handler: ModerationQueueHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/moderation/comments/:id/hide",
				Handler: ModerationHideHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/moderation/comments/:id/unhide",
				Handler: ModerationUnhideHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/v1/moderation/comments/:id",
				Handler: ModerationDeleteHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/configs",
				Handler: ConfigsListHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/api/v1/configs/:key",
				Handler: ConfigsUpsertHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/auth/login",
				Handler: AuthLoginHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/auth/me",
				Handler: AuthMeHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/export/:dataset",
				Handler: ExportHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/healthz",
				Handler: HealthzHandler(serverCtx),
			},
		},
	)
}
