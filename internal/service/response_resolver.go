package service

import (
	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/healthdata"
)

// Branch identifica qué regla produjo la respuesta.
type Branch string

const (
	BranchName        Branch = "name"
	BranchVaccination Branch = "vaccination"
	BranchOutbreak    Branch = "outbreak"
	BranchKeyword     Branch = "keyword"
	BranchFallback    Branch = "fallback"
)

const alertsInReply = 2

// Resolution es el resultado de resolver un mensaje libre.
// Facts se devuelve en todas las ramas para que el llamador persista la edad aunque responda otra regla.
type Resolution struct {
	Reply  string
	Branch Branch
	Facts  Facts
}

// ResponseResolver elige la respuesta del bot con reglas fijas sobre el corpus de referencia.
type ResponseResolver struct {
	data      *healthdata.Store
	extractor FactExtractor
}

func NewResponseResolver(data *healthdata.Store) *ResponseResolver {
	if data == nil {
		data = healthdata.Default()
	}
	return &ResponseResolver{data: data}
}

// Resolve es total y sin efectos: siempre devuelve una respuesta no vacía.
// Precedencia: nombre, vacunas por edad, alertas de brote, tabla de palabras clave, respuesta por defecto.
func (r *ResponseResolver) Resolve(text string, lang domain.Language) Resolution {
	if _, ok := domain.ParseLanguage(string(lang)); !ok {
		lang = domain.LanguageEnglish
	}
	facts := r.extractor.Extract(text)
	res := Resolution{Facts: facts}

	if facts.Name != "" {
		res.Reply = healthdata.Greeting(lang, facts.Name)
		res.Branch = BranchName
		return res
	}

	if facts.Age != nil && *facts.Age <= domain.MaxPediatricAge {
		vaccines := r.data.VaccinesFor(domain.BucketForAge(*facts.Age))
		if len(vaccines) > 0 {
			res.Reply = healthdata.VaccinationAdvice(lang, *facts.Age, vaccines)
			res.Branch = BranchVaccination
			return res
		}
	}

	normalized := normalizeText(text)

	if containsAny(normalized, "outbreak", "alert") {
		res.Reply = healthdata.AlertsSummary(lang, r.data.RecentAlerts(alertsInReply))
		res.Branch = BranchOutbreak
		return res
	}

	for _, entry := range r.data.Keywords {
		if containsAny(normalized, entry.Keywords...) {
			if reply := entry.Response.In(lang); reply != "" {
				res.Reply = reply
				res.Branch = BranchKeyword
				return res
			}
		}
	}

	res.Reply = healthdata.Fallback(lang)
	res.Branch = BranchFallback
	return res
}
