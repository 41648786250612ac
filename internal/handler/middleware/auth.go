package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"expert-booking/internal/domain/identity"
	"expert-booking/internal/pkg/cookie"
	"expert-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller identity through the account store chain,
// so handlers downstream only ever see a single identity shape no matter which
// store the account lives in.
type AuthMiddleware struct {
	resolver usecase.IdentityResolver
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(resolver usecase.IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		ident, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Identity resolution failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setIdentity(c, ident)
		c.Next()
	}
}

// OptionalAuth resolves the identity if a token is present, but never aborts.
// The event stream uses this: anonymous observers may watch availability
// topics while provider and admin topics still demand a resolved identity.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		ident, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, ident)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, ident identity.Identity) {
	c.Set(ctxIdentityKey, ident)
	c.Set("jwt_claims", map[string]any{
		"account_id": ident.ID.String(),
		"role":       ident.Role.String(),
	})
}

func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	value, exists := c.Get(ctxIdentityKey)
	if !exists {
		return identity.Identity{}, false
	}

	ident, ok := value.(identity.Identity)
	return ident, ok
}
