package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tajrubatahsin16/LanguageShala-server/internal/auth"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxEmail  = "email"
	CtxClaims = "claims"
)

// RequireAuth verifies the bearer credential on the request. A missing
// header, a malformed scheme and a token that fails verification all end
// the same way: 401, request over. On success the verified claims and the
// subject email land on the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			handleAuthError(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			handleAuthError(c)
			return
		}

		claims, err := auth.VerifyToken(parts[1], secret)
		if err != nil {
			handleAuthError(c)
			return
		}

		email, _ := claims["email"].(string)
		if email == "" {
			handleAuthError(c)
			return
		}

		c.Set(CtxEmail, email)
		c.Set(CtxClaims, claims)
		c.Next()
	}
}

func handleAuthError(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
	c.Abort()
}
