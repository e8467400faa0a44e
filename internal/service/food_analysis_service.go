package service

import (
	"context"
	"fmt"
	"strings"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/llm"
)

const foodAnalysisPrompt = `Analyze this food image for someone with these symptoms: "%s".

Provide a JSON response with:
{
  "foodName": "identified food name",
  "recommendation": "good" | "avoid" | "moderate",
  "nutritionalInfo": {
    "calories": "estimated calories per serving",
    "nutrients": ["key nutrients present"],
    "healthBenefits": ["benefits for general health"]
  },
  "advice": "specific advice for the symptoms mentioned",
  "reasoning": "why this food is good/bad for these symptoms"
}

Focus on Indian dietary context and Ayurvedic principles where relevant.`

// FoodAnalysisService evalúa la foto de un alimento frente a los síntomas del usuario.
type FoodAnalysisService struct {
	ai aiCaller
}

func NewFoodAnalysisService(client llm.LLMClient, opts AIOptions) *FoodAnalysisService {
	return &FoodAnalysisService{ai: newAICaller("analyze_food", client, opts)}
}

// Analyze devuelve el análisis del modelo o, si su salida no es JSON, un análisis neutro.
func (s *FoodAnalysisService) Analyze(ctx context.Context, imageBase64, symptoms string) (domain.FoodAnalysis, error) {
	image, err := decodeImage(imageBase64)
	if err != nil {
		return domain.FoodAnalysis{}, err
	}

	raw, err := s.ai.generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(foodAnalysisPrompt, strings.TrimSpace(symptoms)),
		Image:       image,
		Temperature: 0.3,
	})
	if err != nil {
		return domain.FoodAnalysis{}, err
	}

	var analysis domain.FoodAnalysis
	if err := decodeModelJSON(raw, &analysis); err != nil {
		s.ai.observe(outcomeFallback)
		return fallbackFoodAnalysis(), nil
	}
	s.ai.observe(outcomeOK)

	analysis.Recommendation = normalizeRecommendation(analysis.Recommendation)
	analysis.NutritionalInfo.Nutrients = nonNilStrings(analysis.NutritionalInfo.Nutrients)
	analysis.NutritionalInfo.HealthBenefits = nonNilStrings(analysis.NutritionalInfo.HealthBenefits)
	return analysis, nil
}

// normalizeRecommendation limita el valor a good, avoid o moderate.
func normalizeRecommendation(v string) string {
	switch r := strings.ToLower(strings.TrimSpace(v)); r {
	case "good", "avoid", "moderate":
		return r
	default:
		return "moderate"
	}
}

func fallbackFoodAnalysis() domain.FoodAnalysis {
	return domain.FoodAnalysis{
		FoodName:       "Unknown Food",
		Recommendation: "moderate",
		NutritionalInfo: domain.NutritionalInfo{
			Calories:       "Unable to determine",
			Nutrients:      []string{"Analysis unavailable"},
			HealthBenefits: []string{"Consult nutritionist"},
		},
		Advice:    "Unable to analyze properly. Please consult a healthcare provider.",
		Reasoning: "Image analysis was inconclusive.",
	}
}
