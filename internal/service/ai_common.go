package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"swasthya-ai/internal/llm"
	"swasthya-ai/internal/metrics"
)

var (
	ErrAINotConfigured = errors.New("ai service not configured")
	ErrAIUnavailable   = errors.New("ai service unavailable")
	ErrInvalidImage    = errors.New("invalid image data")
	ErrEmptyInput      = errors.New("empty input")
)

const (
	outcomeOK       = "ok"
	outcomeFallback = "fallback"
	outcomeError    = "error"
	outcomeCached   = "cache"

	defaultImageMIME = "image/jpeg"
)

var dataURLPrefix = regexp.MustCompile(`^data:(image/[^;]+);base64,`)

// AIOptions son las dependencias comunes de los servicios de IA.
type AIOptions struct {
	Metrics *metrics.Collector
	Logger  *zap.Logger
	Timeout time.Duration
}

type aiCaller struct {
	service string
	client  llm.LLMClient
	opts    AIOptions
}

func newAICaller(service string, client llm.LLMClient, opts AIOptions) aiCaller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return aiCaller{service: service, client: client, opts: opts}
}

// generate llama al modelo una sola vez. Una respuesta vacía no es error: devuelve "".
func (a aiCaller) generate(ctx context.Context, req llm.Request) (string, error) {
	if a.client == nil {
		return "", ErrAINotConfigured
	}
	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}

	out, err := a.client.Generate(ctx, req)
	if errors.Is(err, llm.ErrEmptyResponse) {
		return "", nil
	}
	if err != nil {
		a.observe(outcomeError)
		a.opts.Logger.Warn("ai request failed", zap.String("service", a.service), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %v", ErrAIUnavailable, a.service, err)
	}
	return out, nil
}

func (a aiCaller) observe(outcome string) {
	a.opts.Metrics.ObserveAI(a.service, outcome)
}

// decodeImage acepta un data URL (image/...;base64,) o base64 crudo.
// Sin prefijo se asume image/jpeg.
func decodeImage(input string) (*llm.Image, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrInvalidImage
	}

	mime := defaultImageMIME
	if m := dataURLPrefix.FindStringSubmatch(input); m != nil {
		mime = m[1]
	}
	payload := input
	if i := strings.IndexByte(input, ','); i >= 0 {
		payload = input[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidImage
	}
	return &llm.Image{MIMEType: mime, Data: data}, nil
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
