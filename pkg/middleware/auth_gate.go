package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wander/pkg/auth"
	"wander/pkg/utils"
)

const identityKey = "identity"

// ProfileStore resolves a verified subject identifier to a full Identity.
type ProfileStore interface {
	GetIdentity(ctx context.Context, subjectID string) (*auth.Identity, error)
}

// AuthGate extracts the bearer credential, verifies it, loads the subject's
// profile and attaches the resolved Identity to the request context. Any
// failure rejects the request with 401 before downstream handlers run.
func AuthGate(verifier auth.Verifier, profiles ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		subject, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		identity, err := profiles.GetIdentity(c.Request.Context(), subject.ID)
		if err != nil || identity == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Unknown subject")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Set("user_id", identity.ID.String())
		c.Set("Role", identity.Role)
		c.Next()
	}
}

// IdentityFromContext returns the Identity attached by AuthGate, or nil when
// the request never passed the gate.
func IdentityFromContext(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := v.(*auth.Identity)
	if !ok {
		return nil
	}
	return identity
}

// RoleMiddleware rejects requests whose resolved identity lacks the required
// role. Must run after AuthGate.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("Role") != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
