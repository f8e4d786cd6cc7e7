package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fed-sentiment/internal/service"
)

const (
	sessionIDKey      = "session_id"
	sessionCookieName = "fed_session"
)

// SessionMiddleware asegura una sesion de encuesta por navegador y guarda su id en el contexto.
func SessionMiddleware(logger *zap.Logger, tokens *service.SessionTokenService, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "sessions not configured"})
			return
		}

		if raw, err := c.Cookie(sessionCookieName); err == nil {
			if sessionID, err := tokens.Parse(raw); err == nil {
				c.Set(sessionIDKey, sessionID)
				c.Next()
				return
			}
		}

		sessionID, token, err := tokens.Issue()
		if err != nil {
			logger.Error("session issue failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookieName, token, int(tokens.TTL().Seconds()), "/", "", secureCookie, true)
		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID obtiene el id de sesion desde el contexto.
func GetSessionID(c *gin.Context) (string, bool) {
	val, ok := c.Get(sessionIDKey)
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
