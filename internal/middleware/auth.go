package middleware

import (
	"context"
	"net/http"
	"strings"

	"photobook/internal/domain"
	jwtsvc "photobook/internal/pkg/jwt"
	"photobook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserResolver turns a token's user id into a live account. A valid
// signature is not enough: the identity guard requires the account to
// still exist.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// JWTAuth validates the bearer token and resolves it to an existing user.
// Sets "user_id", "role" and "user" on the context.
func JWTAuth(jwt *jwtsvc.Service, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwt)
		if !ok {
			return
		}

		if claims.Role == jwtsvc.RoleAdmin {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Set("user", user)

		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
		c.Abort()
		return nil, false
	}
	if !strings.HasPrefix(h, "Bearer ") {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
		c.Abort()
		return nil, false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
		c.Abort()
		return nil, false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		c.Abort()
		return nil, false
	}
	return claims, true
}
