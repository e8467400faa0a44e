package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/service"
)

// AIHandler expone los colaboradores de IA: alimentos, medicamentos, recetas y voz.
type AIHandler struct {
	logger       *zap.Logger
	food         *service.FoodAnalysisService
	medicine     *service.MedicineInfoService
	prescription *service.PrescriptionService
	voice        *service.VoiceChatService
}

func NewAIHandler(
	logger *zap.Logger,
	food *service.FoodAnalysisService,
	medicine *service.MedicineInfoService,
	prescription *service.PrescriptionService,
	voice *service.VoiceChatService,
) *AIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIHandler{
		logger:       logger,
		food:         food,
		medicine:     medicine,
		prescription: prescription,
		voice:        voice,
	}
}

// AnalyzeFood maneja POST /ai/analyze-food.
func (h *AIHandler) AnalyzeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"imageBase64" binding:"required"`
		Symptoms    string `json:"symptoms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	analysis, err := h.food.Analyze(c.Request.Context(), req.ImageBase64, req.Symptoms)
	if err != nil {
		h.respondError(c, "analyze-food", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// MedicineInfo maneja POST /ai/medicine-info.
func (h *AIHandler) MedicineInfo(c *gin.Context) {
	var req struct {
		MedicineName string `json:"medicineName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	info, err := h.medicine.Lookup(c.Request.Context(), req.MedicineName)
	if err != nil {
		h.respondError(c, "medicine-info", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"medicineInfo": info})
}

// PrescriptionTimings maneja POST /ai/prescription-timings.
func (h *AIHandler) PrescriptionTimings(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"imageBase64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	timings, err := h.prescription.Extract(c.Request.Context(), req.ImageBase64)
	if err != nil {
		h.respondError(c, "prescription-timings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timings": timings})
}

// VoiceChat maneja POST /ai/chat.
func (h *AIHandler) VoiceChat(c *gin.Context) {
	var req struct {
		Message  string `json:"message" binding:"required"`
		Language string `json:"language"`
		Context  string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reply, err := h.voice.Reply(c.Request.Context(), req.Message, domain.Language(req.Language), req.Context)
	if err != nil {
		h.respondError(c, "chat", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (h *AIHandler) respondError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image data"})
	case errors.Is(err, service.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, service.ErrAINotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
	case errors.Is(err, service.ErrAIUnavailable):
		h.logger.Warn("ai upstream failed", zap.String("route", route), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service unavailable"})
	default:
		h.logger.Error("ai request failed", zap.String("route", route), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
