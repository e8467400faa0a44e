package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/llm"
)

const medicineInfoPrompt = `Provide medicine information for "%s". Return a JSON response with:

{
  "name": "medicine name",
  "genericName": "generic/scientific name",
  "uses": ["primary uses"],
  "dosage": {
    "typical": "typical dosage",
    "timing": "when to take (e.g., after meals, twice daily)",
    "duration": "typical treatment duration"
  },
  "precautions": ["important precautions"],
  "sideEffects": ["common side effects"],
  "interactions": ["drug/food interactions"],
  "storage": "how to store",
  "disclaimer": "Always consult your doctor before taking any medication"
}

Focus on Indian pharmaceutical context. If the medicine is not recognized, indicate so clearly.`

const medicineDisclaimer = "Always consult your doctor before taking any medication"

// MedicineInfoService consulta información de un medicamento. Las respuestas válidas
// se guardan en cache por nombre; los fallbacks no.
type MedicineInfoService struct {
	ai    aiCaller
	cache *cache.Cache
}

// NewMedicineInfoService crea el servicio; ttl <= 0 desactiva la cache.
func NewMedicineInfoService(client llm.LLMClient, ttl time.Duration, opts AIOptions) *MedicineInfoService {
	s := &MedicineInfoService{ai: newAICaller("medicine_info", client, opts)}
	if ttl > 0 {
		s.cache = cache.New(ttl, time.Hour)
	}
	return s
}

func (s *MedicineInfoService) Lookup(ctx context.Context, medicineName string) (domain.MedicineInfo, error) {
	name := strings.TrimSpace(medicineName)
	if name == "" {
		return domain.MedicineInfo{}, ErrEmptyInput
	}
	key := strings.ToLower(name)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			s.ai.observe(outcomeCached)
			return v.(domain.MedicineInfo), nil
		}
	}

	raw, err := s.ai.generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(medicineInfoPrompt, name),
		Temperature: 0.2,
	})
	if err != nil {
		return domain.MedicineInfo{}, err
	}

	var info domain.MedicineInfo
	if err := decodeModelJSON(raw, &info); err != nil {
		s.ai.observe(outcomeFallback)
		return fallbackMedicineInfo(name), nil
	}
	s.ai.observe(outcomeOK)

	if strings.TrimSpace(info.Name) == "" {
		info.Name = name
	}
	if strings.TrimSpace(info.Disclaimer) == "" {
		info.Disclaimer = medicineDisclaimer
	}
	info.Uses = nonNilStrings(info.Uses)
	info.Precautions = nonNilStrings(info.Precautions)
	info.SideEffects = nonNilStrings(info.SideEffects)
	info.Interactions = nonNilStrings(info.Interactions)

	if s.cache != nil {
		s.cache.SetDefault(key, info)
	}
	return info, nil
}

func fallbackMedicineInfo(name string) domain.MedicineInfo {
	return domain.MedicineInfo{
		Name:        name,
		GenericName: "Unknown",
		Uses:        []string{"Information not available"},
		Dosage: domain.Dosage{
			Typical:  "Consult your doctor",
			Timing:   "As prescribed",
			Duration: "As prescribed",
		},
		Precautions:  []string{"Always consult your healthcare provider"},
		SideEffects:  []string{"Information not available"},
		Interactions: []string{"Consult pharmacist"},
		Storage:      "Store as per package instructions",
		Disclaimer:   medicineDisclaimer,
	}
}
