package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/service"
)

// ChatHandler expone las sesiones de chat guiado sobre HTTP.
type ChatHandler struct {
	logger   *zap.Logger
	sessions *service.SessionManager
	tokens   *service.SessionTokenService
}

func NewChatHandler(logger *zap.Logger, sessions *service.SessionManager, tokens *service.SessionTokenService) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{logger: logger, sessions: sessions, tokens: tokens}
}

// CreateSession maneja POST /sessions.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req struct {
		Language   string `json:"language"`
		ProfileKey string `json:"profile_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Language == "" {
		req.Language = string(domain.LanguageEnglish)
	}

	session, err := h.sessions.Create(c.Request.Context(), domain.Language(req.Language), req.ProfileKey)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(c.Request.Context(), session.ID())
	if err != nil {
		h.logger.Error("issue session token failed", zap.String("session_id", session.ID()), zap.Error(err))
		_ = h.sessions.Delete(session.ID())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":    session.Snapshot(),
		"token":      token.Token,
		"expires_in": token.ExpiresIn,
	})
}

// GetSession maneja GET /sessions/:id.
func (h *ChatHandler) GetSession(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session.Snapshot()})
}

// PostMessage maneja POST /sessions/:id/messages. La respuesta del bot llega después,
// por GET o por el stream de eventos.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	accepted := session.SubmitText(c.Request.Context(), req.Text)
	c.JSON(http.StatusAccepted, gin.H{
		"accepted": accepted,
		"session":  session.Snapshot(),
	})
}

// SelectOption maneja POST /sessions/:id/options.
func (h *ChatHandler) SelectOption(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	var req struct {
		OptionID string `json:"option_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := session.SelectOption(c.Request.Context(), req.OptionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session.Snapshot()})
}

// SetLanguage maneja PUT /sessions/:id/language.
func (h *ChatHandler) SetLanguage(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := session.SetLanguage(c.Request.Context(), domain.Language(req.Language)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session.Snapshot()})
}

// Events maneja GET /sessions/:id/events como Server-Sent Events.
// El primer evento es el estado completo; luego llegan los mensajes y reinicios.
func (h *ChatHandler) Events(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	events, cancel := session.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("snapshot", session.Snapshot())
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, open := <-events:
			if !open {
				return false
			}
			c.SSEvent(string(ev.Kind), ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// GetProfile maneja GET /sessions/:id/profile.
func (h *ChatHandler) GetProfile(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": session.ReloadProfile(c.Request.Context())})
}

// PatchProfile maneja PATCH /sessions/:id/profile con una actualización parcial.
func (h *ChatHandler) PatchProfile(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	var update domain.UserProfile
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if update.Age != nil && *update.Age < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must not be negative"})
		return
	}

	profile := session.UpdateProfile(c.Request.Context(), update)
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Transcript maneja GET /sessions/:id/transcript leyendo el archivo, no la sesión en memoria.
func (h *ChatHandler) Transcript(c *gin.Context) {
	rec, messages, err := h.sessions.Transcript(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"session": rec, "messages": messages})
}

// DeleteSession maneja DELETE /sessions/:id y revoca el token usado.
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := h.sessions.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}
	if claims, ok := GetSessionClaims(c); ok {
		if err := h.tokens.Revoke(c.Request.Context(), claims.ID); err != nil {
			h.logger.Warn("revoke session token failed", zap.String("session_id", id), zap.Error(err))
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) lookup(c *gin.Context) (*service.ChatSession, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return session, true
}

func (h *ChatHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language"})
	case errors.Is(err, service.ErrUnknownOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown option"})
	case errors.Is(err, service.ErrFlowFinished):
		c.JSON(http.StatusConflict, gin.H{"error": "questionnaire already finished"})
	case errors.Is(err, service.ErrQuestionPending):
		c.JSON(http.StatusConflict, gin.H{"error": "next question not presented yet"})
	case errors.Is(err, service.ErrTranscriptUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "transcript archive not configured"})
	default:
		h.logger.Error("chat request failed", zap.String("session_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
