package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/domain"
)

const identityKey = "identity"

// identityFrom returns the authenticated requester attached by the
// authenticate middleware.
func identityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

// authenticate verifies the Bearer token and resolves it to an active
// account. The resolved identity is attached to the request context.
func (h *Handler) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			fail(c, http.StatusUnauthorized, "Authorization header missing or malformed")
			c.Abort()
			return
		}

		userID, err := h.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), userID)
		if err != nil || !user.IsActive {
			fail(c, http.StatusUnauthorized, "Invalid token or user inactive")
			c.Abort()
			return
		}

		c.Set(identityKey, domain.Identity{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		})
		c.Next()
	}
}

// requireAdmin runs after authenticate and rejects non-admin callers.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok || !identity.IsAdmin() {
			fail(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireOwnerOrAdmin admits admins unconditionally; other callers must
// own the resource the :id parameter names. lookup resolves the stored
// owner id for the resource type the route serves.
func requireOwnerOrAdmin(lookup func(ctx context.Context, id string) (string, error), notFound string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			fail(c, http.StatusUnauthorized, "Authorization header missing or malformed")
			c.Abort()
			return
		}
		if identity.IsAdmin() {
			c.Next()
			return
		}

		ownerID, err := lookup(c.Request.Context(), c.Param("id"))
		if err != nil {
			failService(c, err, notFound)
			c.Abort()
			return
		}
		if ownerID != identity.ID {
			fail(c, http.StatusForbidden, "Not authorized to modify this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}

// corsMiddleware answers preflight requests and reflects origins from
// the configured allow-list.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
