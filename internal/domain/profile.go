package domain

import "time"

// UserProfile agrupa los datos personales que el asistente recuerda entre sesiones.
type UserProfile struct {
	Name      string     `json:"name,omitempty"`
	Age       *int       `json:"age,omitempty"`
	Location  string     `json:"location,omitempty"`
	Allergies []string   `json:"allergies"`
	LastVisit *time.Time `json:"lastVisit,omitempty"`
}

// Merge aplica una actualización parcial: solo se sobrescriben los campos presentes en update.
func (p UserProfile) Merge(update UserProfile) UserProfile {
	merged := p
	if update.Name != "" {
		merged.Name = update.Name
	}
	if update.Age != nil {
		age := *update.Age
		merged.Age = &age
	}
	if update.Location != "" {
		merged.Location = update.Location
	}
	if update.Allergies != nil {
		merged.Allergies = append([]string(nil), update.Allergies...)
	}
	if update.LastVisit != nil {
		visit := *update.LastVisit
		merged.LastVisit = &visit
	}
	return merged.Normalized()
}

// Normalized deja el perfil en la forma que sobrevive a un ciclo JSON sin cambios:
// LastVisit en UTC y sin lectura monotónica.
func (p UserProfile) Normalized() UserProfile {
	if p.LastVisit != nil {
		visit := p.LastVisit.UTC().Round(0)
		p.LastVisit = &visit
	}
	return p
}

// IsEmpty indica si el perfil no tiene ningún dato.
func (p UserProfile) IsEmpty() bool {
	return p.Name == "" && p.Age == nil && p.Location == "" && len(p.Allergies) == 0 && p.LastVisit == nil
}
