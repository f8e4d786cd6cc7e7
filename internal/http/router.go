package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fed-sentiment/internal/render"
	"fed-sentiment/internal/service"
)

// NewRouter configura el router de Gin con middlewares, templates y rutas.
func NewRouter(
	logger *zap.Logger,
	sessions *service.SessionTokenService,
	secureCookie bool,
	reportH *ReportHandler,
	surveyH *SurveyHandler,
) (*gin.Engine, error) {
	tmpl, err := render.PageTemplate()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// Middlewares basicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	site := r.Group("", SessionMiddleware(logger, sessions, secureCookie))
	site.GET("/", reportH.Show)
	site.POST("/survey", reportH.PostSurvey)

	api := r.Group("/api", SessionMiddleware(logger, sessions, secureCookie), jsonContentTypeMiddleware())
	api.GET("/survey", surveyH.GetSurvey)
	api.PATCH("/survey", surveyH.UpdateControls)
	api.DELETE("/survey", surveyH.Reset)
	api.POST("/survey/submit", surveyH.Submit)

	return r, nil
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
