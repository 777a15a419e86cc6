package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voxcal/config"
)

const webhookSecretHeader = "X-Webhook-Secret"

// WebhookAuthMiddleware verifies the shared secret the voice platform sends
// with every webhook. An empty configured secret disables the check, which
// is only acceptable in development.
func WebhookAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.AppConfig.WebhookSecret
		if secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(webhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			zap.L().Warn("Webhook secret mismatch", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
