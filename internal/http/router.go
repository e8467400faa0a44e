package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swasthya-ai/internal/service"
)

// RouterDeps agrupa los handlers y servicios que expone la API.
type RouterDeps struct {
	Chat      *ChatHandler
	Reference *ReferenceHandler
	AI        *AIHandler
	Tokens    *service.SessionTokenService
	Limiter   service.RateLimiter
	Metrics   http.Handler
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(logger *zap.Logger, deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	if h := deps.Chat; h != nil {
		r.POST("/sessions", h.CreateSession)

		sessions := r.Group("/sessions/:id", SessionAuthMiddleware(deps.Tokens))
		sessions.GET("", h.GetSession)
		sessions.DELETE("", h.DeleteSession)
		sessions.POST("/messages", h.PostMessage)
		sessions.POST("/options", h.SelectOption)
		sessions.PUT("/language", h.SetLanguage)
		sessions.GET("/events", h.Events)
		sessions.GET("/profile", h.GetProfile)
		sessions.PATCH("/profile", h.PatchProfile)
		sessions.GET("/transcript", h.Transcript)
	}

	if h := deps.Reference; h != nil {
		ref := r.Group("/reference")
		ref.GET("/quick-replies", h.QuickReplies)
		ref.GET("/alerts", h.Alerts)
		ref.GET("/alerts/active", h.ActiveAlert)
		ref.GET("/vaccinations", h.Vaccinations)
		ref.GET("/diseases", h.Diseases)
		ref.GET("/questions", h.Questions)
	}

	if h := deps.AI; h != nil {
		ai := r.Group("/ai", corsMiddleware())
		ai.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		limited := ai.Group("", RateLimitMiddleware(deps.Limiter, logger))
		limited.POST("/analyze-food", h.AnalyzeFood)
		limited.POST("/medicine-info", h.MedicineInfo)
		limited.POST("/prescription-timings", h.PrescriptionTimings)
		limited.POST("/chat", h.VoiceChat)
	}

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
// Los handlers que escriben otro formato (SSE, métricas) lo sobrescriben.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Next()
	}
}
