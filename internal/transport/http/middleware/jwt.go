package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"budget-tracker/internal/pkg/jwtutil"
	"budget-tracker/internal/transport/http/response"
)

// ContextUserIDKey is where the auth gate stores the verified user id.
const ContextUserIDKey = "user_id"

// AuthJWT is the auth gate: it admits a request only when the Authorization
// header carries a currently-valid bearer token, and attaches the token's
// user id to the request context. Every verification failure maps to the
// same 401; the caller cannot tell expired from malformed from bad signature.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, 401, response.CodeUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, 401, response.CodeUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, 401, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserIDFromContext returns the user id the auth gate attached.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	return userID, ok
}
