package middleware

import (
	"context"
	"net/http"

	"photobook/internal/domain"
	jwtsvc "photobook/internal/pkg/jwt"
	"photobook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminResolver resolves an admin token owner to an existing admin record.
type AdminResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
}

// AdminAuth validates the bearer token, requires the admin role claim and
// resolves it to an existing admin account. Sets "admin_id" and "admin".
func AdminAuth(jwt *jwtsvc.Service, admins AdminResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwt)
		if !ok {
			return
		}

		if claims.Role != jwtsvc.RoleAdmin {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid admin token")
			c.Abort()
			return
		}

		admin, err := admins.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid admin token")
			c.Abort()
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("admin", admin)

		c.Next()
	}
}
