package service

import (
	"context"
	"fmt"
	"strings"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/healthdata"
	"swasthya-ai/internal/llm"
)

const voiceChatPrompt = `You are Swasthya, a friendly health assistant for rural and semi-urban India.
Answer in %s only, in at most three short sentences that sound natural when read aloud.
Give general health guidance, never a diagnosis or a prescription. For serious or persistent
symptoms, tell the user to see a doctor or visit the nearest health centre.
Conversation context: %s.

User: %s`

var languageNames = map[domain.Language]string{
	domain.LanguageEnglish: "English",
	domain.LanguageHindi:   "Hindi",
	domain.LanguageTelugu:  "Telugu",
}

// VoiceChatService responde preguntas libres del asistente de voz.
type VoiceChatService struct {
	ai aiCaller
}

func NewVoiceChatService(client llm.LLMClient, opts AIOptions) *VoiceChatService {
	return &VoiceChatService{ai: newAICaller("voice_chat", client, opts)}
}

// Reply devuelve la respuesta del modelo en el idioma pedido; idiomas no soportados usan inglés.
// Si el modelo no devuelve texto se responde con el mensaje genérico localizado.
func (s *VoiceChatService) Reply(ctx context.Context, message string, lang domain.Language, convContext string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyInput
	}
	parsed, ok := domain.ParseLanguage(string(lang))
	if !ok {
		parsed = domain.LanguageEnglish
	}
	convContext = strings.TrimSpace(convContext)
	if convContext == "" {
		convContext = "voice_assistant"
	}

	raw, err := s.ai.generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(voiceChatPrompt, languageNames[parsed], convContext, message),
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		s.ai.observe(outcomeFallback)
		return healthdata.Fallback(parsed), nil
	}
	s.ai.observe(outcomeOK)
	return reply, nil
}
