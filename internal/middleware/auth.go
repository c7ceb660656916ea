package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"warga-be-svc/pkg/logger"
	"warga-be-svc/pkg/utils"
)

// RequireAdmin validates the Bearer session token and only lets requests with
// the admin role through. Expired tokens are rejected by the parser, so a
// stale persisted token cannot reopen full access.
func RequireAdmin(jwtSecret string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.UnauthorizedResponse(c, "Missing or malformed Authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			log.WithError(err).Info("Session token rejected")
			utils.UnauthorizedResponse(c, "Invalid or expired session token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.UnauthorizedResponse(c, "Invalid session token claims")
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		if role != "admin" {
			utils.ForbiddenResponse(c, "Admin role required")
			c.Abort()
			return
		}

		c.Set("role", role)
		if sub, ok := claims["sub"].(string); ok {
			c.Set("username", sub)
		}

		c.Next()
	}
}
