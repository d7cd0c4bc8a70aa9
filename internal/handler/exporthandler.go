package handler

import (
	"fmt"
	"net/http"

	"github.com/playdecks/insight/internal/logic"
	"github.com/playdecks/insight/internal/svc"
	"github.com/playdecks/insight/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ExportHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := requireAuth(w, r, svcCtx); !ok {
			return
		}
		var req types.ExportRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		l := logic.NewExportLogic(r.Context(), svcCtx)
		ds, err := l.Export(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		switch req.Format {
		case "json":
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", ds.Name))
			httpx.OkJsonCtx(r.Context(), w, map[string]any{"columns": ds.Header, "rows": ds.Rows})
		default:
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", ds.Name))
			if err := ds.View().WriteCSV(w); err != nil {
				httpx.ErrorCtx(r.Context(), w, err)
			}
		}
	}
}
