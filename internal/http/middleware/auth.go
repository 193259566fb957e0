package middleware

import (
	"net/http"
	"strings"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/auth"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/http/api"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
)

// RequireAuth checks the Authorization header and stores the verified
// identity on the context. Missing, malformed, invalid and expired tokens
// all abort with 401.
func RequireAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			api.AbortFail(c, http.StatusUnauthorized, api.KindUnauthenticated, "missing Authorization header")
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			api.AbortFail(c, http.StatusUnauthorized, api.KindUnauthenticated, "invalid Authorization header format, expected: Bearer <token>")
			return
		}

		identity, err := verifier.Verify(parts[1])
		if err != nil {
			api.AbortFail(c, http.StatusUnauthorized, api.KindUnauthenticated, "invalid or expired token")
			return
		}

		c.Set(CtxUserID, identity.UserID)
		c.Set(CtxUserEmail, identity.Email)
		c.Next()
	}
}

// RequireOwner compares the authenticated identity to the :user_id path
// segment. Strict self-access only, no admin bypass.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(CtxUserID)
		if userID == "" {
			api.AbortFail(c, http.StatusUnauthorized, api.KindUnauthenticated, "missing credentials")
			return
		}

		if userID != c.Param("user_id") {
			api.AbortFail(c, http.StatusForbidden, api.KindForbidden, "cannot access other users' tasks")
			return
		}
		c.Next()
	}
}
