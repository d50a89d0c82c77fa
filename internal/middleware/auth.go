package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"venuespace/internal/pkg/jwt"
	"venuespace/internal/pkg/response"
)

// JWTAuth validates the Bearer token and stores user_id and role in
// the request context.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.CustomError(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			response.CustomError(c, http.StatusUnauthorized, "AUTH_HEADER_INVALID", "Invalid Authorization header")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// Language picks the response language from the Accept-Language
// header, first tag only, defaulting to English.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := "en"
		if raw := c.GetHeader("Accept-Language"); raw != "" {
			first := strings.Split(raw, ",")[0]
			if i := strings.IndexByte(first, '-'); i > 0 {
				first = first[:i]
			}
			first = strings.TrimSpace(strings.ToLower(first))
			if first != "" {
				lang = first
			}
		}
		c.Set("lang", lang)
		c.Next()
	}
}
