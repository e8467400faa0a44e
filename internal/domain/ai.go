package domain

type NutritionalInfo struct {
	Calories       string   `json:"calories"`
	Nutrients      []string `json:"nutrients"`
	HealthBenefits []string `json:"healthBenefits"`
}

// FoodAnalysis es la evaluación de un alimento frente a los síntomas del usuario.
type FoodAnalysis struct {
	FoodName        string          `json:"foodName"`
	Recommendation  string          `json:"recommendation"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
	Advice          string          `json:"advice"`
	Reasoning       string          `json:"reasoning"`
}

type Dosage struct {
	Typical  string `json:"typical"`
	Timing   string `json:"timing"`
	Duration string `json:"duration"`
}

type MedicineInfo struct {
	Name         string   `json:"name"`
	GenericName  string   `json:"genericName"`
	Uses         []string `json:"uses"`
	Dosage       Dosage   `json:"dosage"`
	Precautions  []string `json:"precautions"`
	SideEffects  []string `json:"sideEffects"`
	Interactions []string `json:"interactions"`
	Storage      string   `json:"storage"`
	Disclaimer   string   `json:"disclaimer"`
}

type DoseTimings struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
	Night     bool `json:"night"`
}

type PrescribedMedicine struct {
	Name      string      `json:"name"`
	Dosage    string      `json:"dosage"`
	Frequency string      `json:"frequency"`
	Timings   DoseTimings `json:"timings"`
	WithFood  string      `json:"withFood"`
	Duration  string      `json:"duration"`
	Notes     string      `json:"notes"`
}

// PrescriptionTimings es el calendario de tomas extraído de una receta.
type PrescriptionTimings struct {
	Medicines []PrescribedMedicine `json:"medicines"`
	Summary   string               `json:"summary"`
}
