package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/auth"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	ctxSubjectIDKey = "subject_id"
	ctxRoleKey      = "role"
)

// APIKeyAuthMiddleware - middleware для административных маршрутов по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.AdminAPIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// JWTAuthMiddleware - middleware для аутентификации по сессионному токену.
// Пропускает только перечисленные роли.
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}

		claims, err := auth.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), cfg.JWTSecret)
		if err != nil {
			log.WithError(err).Warn("Invalid session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		allowed := false
		for _, role := range roles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden for this role"})
			return
		}

		c.Set(ctxSubjectIDKey, claims.SubjectID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// subjectFromContext извлекает субъект токена, положенный middleware
func subjectFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	idValue, ok := c.Get(ctxSubjectIDKey)
	if !ok {
		return uuid.Nil, "", false
	}
	id, ok := idValue.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	role := c.GetString(ctxRoleKey)
	return id, role, true
}
