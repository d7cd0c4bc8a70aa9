package handler

import (
	"net/http"

	"github.com/playdecks/insight/internal/logic"
	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func AnalyticsDailyHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := requireAuth(w, r, svcCtx); !ok {
			return
		}
		var req types.WindowRequest
		if err := httpx.ParseForm(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		l := logic.NewAnalyticsDailyLogic(r.Context(), svcCtx)
		resp, err := l.AnalyticsDaily(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
