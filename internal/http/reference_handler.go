package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/healthdata"
)

// ReferenceHandler sirve las tablas de referencia de solo lectura.
type ReferenceHandler struct {
	data *healthdata.Store
}

func NewReferenceHandler(data *healthdata.Store) *ReferenceHandler {
	if data == nil {
		data = healthdata.Default()
	}
	return &ReferenceHandler{data: data}
}

type localizedOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type localizedQuestion struct {
	ID      string            `json:"id"`
	Prompt  string            `json:"prompt"`
	Options []localizedOption `json:"options"`
}

// QuickReplies maneja GET /reference/quick-replies?lang=.
func (h *ReferenceHandler) QuickReplies(c *gin.Context) {
	lang, ok := queryLanguage(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "quick_replies": h.data.QuickRepliesIn(lang)})
}

func (h *ReferenceHandler) Alerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": h.data.RecentAlerts(len(h.data.Alerts))})
}

// ActiveAlert maneja GET /reference/alerts/active; 404 si no hay alertas.
func (h *ReferenceHandler) ActiveAlert(c *gin.Context) {
	alert, ok := h.data.ActiveAlert()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active alert"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

func (h *ReferenceHandler) Vaccinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vaccinations": h.data.Vaccinations})
}

func (h *ReferenceHandler) Diseases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diseases": h.data.Diseases})
}

// Questions maneja GET /reference/questions?lang= con los textos ya localizados.
func (h *ReferenceHandler) Questions(c *gin.Context) {
	lang, ok := queryLanguage(c)
	if !ok {
		return
	}
	out := make([]localizedQuestion, 0, len(h.data.Questions))
	for _, q := range h.data.Questions {
		lq := localizedQuestion{ID: q.ID, Prompt: q.Prompt.In(lang), Options: make([]localizedOption, 0, len(q.Options))}
		for _, opt := range q.Options {
			lq.Options = append(lq.Options, localizedOption{ID: opt.ID, Text: opt.Text.In(lang)})
		}
		out = append(out, lq)
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "questions": out})
}

// queryLanguage lee ?lang=; sin parámetro usa inglés.
func queryLanguage(c *gin.Context) (domain.Language, bool) {
	code := c.DefaultQuery("lang", string(domain.LanguageEnglish))
	lang, ok := domain.ParseLanguage(code)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language"})
		return "", false
	}
	return lang, true
}
