package middleware

import (
	"strings"

	"wantok-jobs/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
)

// OptionalAuthMiddleware resolves the request subject when a bearer token is
// present. Auth is advisory for recommendations: a missing, expired or
// invalid token leaves the request anonymous instead of rejecting it, and
// the caller gets the popular list.
type OptionalAuthMiddleware struct {
	jwt jwt.Service
}

func NewOptionalAuthMiddleware(jwtSvc jwt.Service) *OptionalAuthMiddleware {
	return &OptionalAuthMiddleware{jwt: jwtSvc}
}

func (m *OptionalAuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if ok {
			claims, err := m.jwt.ValidateToken(token)
			if err == nil {
				c.Locals(CtxUserIDKey, claims.UserID)
				c.Locals(CtxRoleKey, claims.Role)
			}
		}
		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
