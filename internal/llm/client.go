package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	DefaultTextModel   = "gemini-2.0-flash"
	DefaultVisionModel = "gemini-2.0-flash"

	defaultTopK           = 40
	defaultTopP           = 0.95
	defaultMaxOutputToken = 1024
)

var (
	ErrEmptyPrompt   = errors.New("llm prompt is empty")
	ErrEmptyResponse = errors.New("llm empty response")
)

// LLMClient define la interfaz para generar respuestas con un LLM.
type LLMClient interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Image es una imagen adjunta al prompt, ya decodificada.
type Image struct {
	MIMEType string
	Data     []byte
}

// Request describe una generación. JSON pide al modelo una respuesta application/json.
type Request struct {
	Prompt      string
	Image       *Image
	Temperature float32
	JSON        bool
}

// GeminiClient implementa LLMClient sobre la API de Gemini.
// Las peticiones con imagen usan el modelo de visión.
type GeminiClient struct {
	client      *genai.Client
	textModel   string
	visionModel string
	logger      *zap.Logger
}

// NewGeminiClient construye el cliente con la API key de Gemini.
func NewGeminiClient(ctx context.Context, apiKey, textModel, visionModel string, logger *zap.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if visionModel == "" {
		visionModel = DefaultVisionModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiClient{
		client:      client,
		textModel:   textModel,
		visionModel: visionModel,
		logger:      logger,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", ErrEmptyPrompt
	}

	model := c.textModel
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil && len(req.Image.Data) > 0 {
		model = c.visionModel
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, generationConfig(req))
	if err != nil {
		c.logger.Warn("gemini generate failed", zap.String("model", model), zap.Error(err))
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func generationConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](req.Temperature),
		TopK:            genai.Ptr[float32](defaultTopK),
		TopP:            genai.Ptr[float32](defaultTopP),
		MaxOutputTokens: defaultMaxOutputToken,
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}
