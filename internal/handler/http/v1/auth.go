package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_preparedness/internal/config"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		entry := log.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"client": c.ClientIP(),
		})

		if apiKey == "" {
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "API key required"})
			return
		}

		if !validAPIKey(cfg.APIKeys, apiKey) {
			entry.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid API key"})
			return
		}

		c.Next()
	}
}

func validAPIKey(keys []string, candidate string) bool {
	valid := false
	for _, key := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(candidate)) == 1 {
			valid = true
		}
	}
	return valid
}
