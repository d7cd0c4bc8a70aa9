package handler

import (
	"net"
	"net/http"

	"github.com/playdecks/insight/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// requireAuth authenticates the request, writing 401 on failure.
func requireAuth(w http.ResponseWriter, r *http.Request, svcCtx *svc.ServiceContext) (user, role string, ok bool) {
	user, role, ok = svcCtx.Authenticate(r)
	if !ok {
		httpx.WriteJsonCtx(r.Context(), w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
	}
	return user, role, ok
}

// requireModerator additionally checks for a mutating role, writing 403.
func requireModerator(w http.ResponseWriter, r *http.Request, svcCtx *svc.ServiceContext) bool {
	_, role, ok := requireAuth(w, r, svcCtx)
	if !ok {
		return false
	}
	if !svc.CanModerate(role) {
		httpx.WriteJsonCtx(r.Context(), w, http.StatusForbidden, map[string]string{"message": "forbidden"})
		return false
	}
	return true
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
