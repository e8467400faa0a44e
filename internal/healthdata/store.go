package healthdata

import (
	"sort"

	"swasthya-ai/internal/domain"
)

// Store expone las tablas de referencia de solo lectura que usa el asistente.
// Se construye una vez al arrancar y se comparte entre sesiones.
type Store struct {
	Vaccinations []domain.VaccinationEntry
	Alerts       []domain.OutbreakAlert
	Diseases     []domain.DiseaseInfo
	Keywords     []domain.KeywordResponse
	QuickReplies []domain.LocalizedText
	Questions    []domain.Question
}

// Default devuelve el corpus embebido.
func Default() *Store {
	return &Store{
		Vaccinations: vaccinationSchedule,
		Alerts:       outbreakAlerts,
		Diseases:     diseaseInfo,
		Keywords:     keywordResponses,
		QuickReplies: quickReplies,
		Questions:    symptomQuestions,
	}
}

// VaccinesFor filtra el calendario por bucket de edad conservando el orden de la tabla.
func (s *Store) VaccinesFor(bucket domain.AgeBucket) []domain.VaccinationEntry {
	var out []domain.VaccinationEntry
	for _, v := range s.Vaccinations {
		if bucket.Matches(v.Age) {
			out = append(out, v)
		}
	}
	return out
}

// RecentAlerts devuelve hasta n alertas ordenadas de la más reciente a la más antigua.
// Las fechas ISO (YYYY-MM-DD) se comparan como texto; ante empate se respeta el orden de la tabla.
func (s *Store) RecentAlerts(n int) []domain.OutbreakAlert {
	if n <= 0 || len(s.Alerts) == 0 {
		return nil
	}
	alerts := append([]domain.OutbreakAlert(nil), s.Alerts...)
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Date > alerts[j].Date
	})
	if n > len(alerts) {
		n = len(alerts)
	}
	return alerts[:n]
}

// ActiveAlert devuelve la alerta más reciente, usada como banner.
func (s *Store) ActiveAlert() (domain.OutbreakAlert, bool) {
	recent := s.RecentAlerts(1)
	if len(recent) == 0 {
		return domain.OutbreakAlert{}, false
	}
	return recent[0], true
}

// QuickRepliesIn devuelve las respuestas rápidas en el idioma pedido.
func (s *Store) QuickRepliesIn(lang domain.Language) []string {
	out := make([]string, 0, len(s.QuickReplies))
	for _, qr := range s.QuickReplies {
		out = append(out, qr.In(lang))
	}
	return out
}
