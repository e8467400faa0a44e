package domain

// Option es una respuesta seleccionable de una pregunta guiada.
type Option struct {
	ID   string        `json:"id"`
	Text LocalizedText `json:"text"`
}

// Question es un paso del cuestionario de síntomas.
type Question struct {
	ID      string        `json:"id"`
	Prompt  LocalizedText `json:"prompt"`
	Options []Option      `json:"options"`
}

// FindOption busca una opción por id.
func (q Question) FindOption(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

type SymptomAnswer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}
