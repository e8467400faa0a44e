package service

import (
	"context"
	"strings"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/llm"
)

const prescriptionPrompt = `You are a medical assistant. Extract medicine schedule from the prescription image.

Strictly return JSON only with this exact shape:
{
  "medicines": [
    {
      "name": "Medicine name with strength",
      "dosage": "e.g., 1 tablet, 5 ml, 1 cap",
      "frequency": "e.g., once daily, twice daily, thrice daily",
      "timings": { "morning": true, "afternoon": false, "evening": true, "night": false },
      "withFood": "before food | after food | with food | unspecified",
      "duration": "e.g., 5 days, 1 week",
      "notes": "any special notes like if fever >101, SOS, etc."
    }
  ],
  "summary": "human friendly summary of the schedule"
}

Guidelines:
- If handwriting is unclear, make your best clinical guess and mark uncertain notes in "notes".
- Map typical shorthand: BD=twice daily, TDS=thrice daily, OD=once daily, HS=at night, SOS=as needed.
- Convert dots/marks around timings into booleans for morning/afternoon/evening/night.
- Assume adult dosing unless clearly pediatric.`

const prescriptionFallbackSummary = "Unable to confidently extract timings. Please upload a clearer photo."

// PrescriptionService extrae el calendario de tomas de la foto de una receta.
type PrescriptionService struct {
	ai aiCaller
}

func NewPrescriptionService(client llm.LLMClient, opts AIOptions) *PrescriptionService {
	return &PrescriptionService{ai: newAICaller("prescription_timings", client, opts)}
}

func (s *PrescriptionService) Extract(ctx context.Context, imageBase64 string) (domain.PrescriptionTimings, error) {
	image, err := decodeImage(imageBase64)
	if err != nil {
		return domain.PrescriptionTimings{}, err
	}

	raw, err := s.ai.generate(ctx, llm.Request{
		Prompt:      prescriptionPrompt,
		Image:       image,
		Temperature: 0.2,
		JSON:        true,
	})
	if err != nil {
		return domain.PrescriptionTimings{}, err
	}

	var timings domain.PrescriptionTimings
	if err := decodeModelJSON(raw, &timings); err != nil {
		s.ai.observe(outcomeFallback)
		return domain.PrescriptionTimings{
			Medicines: []domain.PrescribedMedicine{},
			Summary:   prescriptionFallbackSummary,
		}, nil
	}
	s.ai.observe(outcomeOK)

	if timings.Medicines == nil {
		timings.Medicines = []domain.PrescribedMedicine{}
	}
	for i := range timings.Medicines {
		if strings.TrimSpace(timings.Medicines[i].WithFood) == "" {
			timings.Medicines[i].WithFood = "unspecified"
		}
	}
	return timings, nil
}
