package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tajrubatahsin16/LanguageShala-server/config"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/store"
)

const roleCacheTTL = 10 * time.Minute

// RequireRole composes after RequireAuth: it resolves the stored role for
// the authenticated email and demands an exact match with requiredRole.
// There is no hierarchy; an admin does not pass an instructor gate.
func RequireRole(users store.UserStore, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxEmail)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			c.Abort()
			return
		}

		role, err := lookupRole(c.Request.Context(), users, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
				c.Abort()
				return
			}
			slog.Error("Role lookup failed", "error", err, "email", email)
			c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "could not verify role"})
			c.Abort()
			return
		}

		if role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// lookupRole consults the redis cache first and falls back to the store.
// Cache failures only cost the shortcut, never the request.
func lookupRole(ctx context.Context, users store.UserStore, email string) (string, error) {
	cacheKey := roleCacheKey(email)
	if config.RDB != nil {
		cached, err := config.RDB.Get(ctx, cacheKey).Result()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			slog.Error("Redis GET failed", "error", err, "email", email)
		}
	}

	user, err := users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	role := user.EffectiveRole()

	if config.RDB != nil {
		if err := config.RDB.Set(ctx, cacheKey, role, roleCacheTTL).Err(); err != nil {
			slog.Error("Redis SET failed", "error", err, "email", email)
		}
	}
	return role, nil
}

// InvalidateRoleCache drops the cached role for an email. Called after a
// role grant so the promotion is visible before the TTL runs out.
func InvalidateRoleCache(ctx context.Context, email string) {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(ctx, roleCacheKey(email)).Err(); err != nil {
		slog.Error("Failed to invalidate role cache", "error", err, "email", email)
	}
}

func roleCacheKey(email string) string {
	return fmt.Sprintf("role:%s", email)
}
