package svc

import (
	"net/http"
	"strings"

	usersgorm "github.com/playdecks/insight/internal/repo/gorm/users"
)

// Authenticate validates the bearer token and returns (username, role, ok).
func (s *ServiceContext) Authenticate(r *http.Request) (string, string, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return "", "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if tok == "" {
		return "", "", false
	}
	user, role, err := s.JWT.Verify(tok)
	if err != nil {
		return "", "", false
	}
	return user, role, true
}

// CanModerate reports whether the role may mutate moderation and config
// state. Viewers read everything but write nothing.
func CanModerate(role string) bool {
	return role == usersgorm.RoleAdmin || role == usersgorm.RoleModerator
}
