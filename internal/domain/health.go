package domain

import "strings"

type KeywordResponse struct {
	Keywords []string      `json:"keywords"`
	Response LocalizedText `json:"response"`
}

type VaccinationEntry struct {
	Vaccine     string `json:"vaccine"`
	Age         string `json:"age"`
	Description string `json:"description"`
}

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

type OutbreakAlert struct {
	Disease     string        `json:"disease"`
	Location    string        `json:"location"`
	Severity    AlertSeverity `json:"severity"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
}

type DiseaseInfo struct {
	Name       string   `json:"name"`
	Symptoms   []string `json:"symptoms"`
	Prevention []string `json:"prevention"`
	Treatment  string   `json:"treatment"`
}

// AgeBucket clasifica una edad para filtrar el calendario de vacunación.
type AgeBucket int

const (
	// AgeBucketBirth cubre recién nacidos (edad 0).
	AgeBucketBirth AgeBucket = iota
	// AgeBucketChild cubre edades de 1 a 18 años.
	AgeBucketChild
)

// MaxPediatricAge es la edad máxima para la que se recomiendan vacunas.
const MaxPediatricAge = 18

// BucketForAge devuelve el bucket de una edad entera en años.
func BucketForAge(age int) AgeBucket {
	if age <= 0 {
		return AgeBucketBirth
	}
	return AgeBucketChild
}

// Matches indica si el texto de edad de una vacuna pertenece al bucket.
func (b AgeBucket) Matches(ageText string) bool {
	text := strings.ToLower(ageText)
	switch b {
	case AgeBucketBirth:
		return strings.Contains(text, "birth")
	case AgeBucketChild:
		return strings.Contains(text, "years") || strings.Contains(text, "months")
	default:
		return false
	}
}

func (b AgeBucket) String() string {
	switch b {
	case AgeBucketBirth:
		return "birth"
	case AgeBucketChild:
		return "child"
	default:
		return "unknown"
	}
}
