package httpserver

import (
	"net/http"
	"strings"

	"storefront-api/internal/domain"
	"storefront-api/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

const userCtxKey = "authenticatedUser"

// authMiddleware resolves the bearer token into a user and stores it on the
// gin context. Handlers receive identity through currentUser, never through
// any ambient global.
func authMiddleware(users userService, f failer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			f.unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		u, err := users.LookupByToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			f.unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(userCtxKey, *u)
		c.Next()
	}
}

// currentUser returns the identity placed by authMiddleware. The bool is
// false only when the middleware did not run, which is a routing mistake.
func currentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return domain.User{}, false
	}
	u, ok := v.(domain.User)
	return u, ok
}

// throttleMiddleware applies the fixed-window limiter per client IP.
func throttleMiddleware(limiter *ratelimit.Limiter, f failer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": true, "message": "too many attempts, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
