package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/workoutkit/tcx-backend-go/pkg/response"
)

// Auth validates bearer tokens signed with the configured secret and stores
// the subject claim in the request context.
func Auth(secret string) gin.HandlerFunc {
	secretBytes := []byte(secret)

	return func(c *gin.Context) {
		token := bearerFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		parsed, err := jwt.Parse(token, func(_ *jwt.Token) (interface{}, error) {
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !parsed.Valid {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		if subject, err := parsed.Claims.GetSubject(); err == nil {
			c.Set("user_id", subject)
		}

		c.Next()
	}
}

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
