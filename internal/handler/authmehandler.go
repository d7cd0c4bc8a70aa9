package handler

import (
	"net/http"

	"github.com/playdecks/insight/internal/logic"
	"github.com/playdecks/insight/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func AuthMeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, role, ok := requireAuth(w, r, svcCtx)
		if !ok {
			return
		}
		l := logic.NewAuthMeLogic(r.Context())
		resp, err := l.AuthMe(user, role)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
