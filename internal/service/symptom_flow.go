package service

import (
	"errors"

	"swasthya-ai/internal/domain"
)

var (
	ErrFlowFinished    = errors.New("symptom flow finished")
	ErrUnknownOption   = errors.New("unknown option for current question")
	ErrQuestionPending = errors.New("next question not presented yet")
)

// FlowStep describe el efecto de responder una pregunta.
type FlowStep struct {
	Question domain.Question
	Option   domain.Option
	// Next es la siguiente pregunta cuando Finished es false.
	Next     domain.Question
	Finished bool
}

// SymptomFlow es la máquina de estados lineal del cuestionario: Asking(0..N-1) y luego Finished.
// No es segura para uso concurrente; la sesión dueña la protege.
type SymptomFlow struct {
	questions []domain.Question
	index     int
	answers   []domain.SymptomAnswer
}

func NewSymptomFlow(questions []domain.Question) *SymptomFlow {
	return &SymptomFlow{questions: questions}
}

func (f *SymptomFlow) Total() int {
	return len(f.questions)
}

// Index devuelve el índice de la pregunta actual; vale Total() cuando terminó.
func (f *SymptomFlow) Index() int {
	return f.index
}

func (f *SymptomFlow) Finished() bool {
	return f.index >= len(f.questions)
}

// Current devuelve la pregunta en curso, o false si el flujo terminó.
func (f *SymptomFlow) Current() (domain.Question, bool) {
	if f.Finished() {
		return domain.Question{}, false
	}
	return f.questions[f.index], true
}

// Answer registra la opción elegida para la pregunta actual y avanza exactamente un paso.
func (f *SymptomFlow) Answer(optionID string) (FlowStep, error) {
	q, ok := f.Current()
	if !ok {
		return FlowStep{}, ErrFlowFinished
	}
	opt, ok := q.FindOption(optionID)
	if !ok {
		return FlowStep{}, ErrUnknownOption
	}

	f.answers = append(f.answers, domain.SymptomAnswer{QuestionID: q.ID, OptionID: opt.ID})
	f.index++

	step := FlowStep{Question: q, Option: opt}
	if next, ok := f.Current(); ok {
		step.Next = next
	} else {
		step.Finished = true
	}
	return step, nil
}

// Answers devuelve una copia de las respuestas en orden.
func (f *SymptomFlow) Answers() []domain.SymptomAnswer {
	return append([]domain.SymptomAnswer(nil), f.answers...)
}

// SelectedTexts devuelve el texto de cada opción elegida en el idioma pedido.
func (f *SymptomFlow) SelectedTexts(lang domain.Language) []string {
	out := make([]string, 0, len(f.answers))
	for i, a := range f.answers {
		if i >= len(f.questions) {
			break
		}
		if opt, ok := f.questions[i].FindOption(a.OptionID); ok {
			out = append(out, opt.Text.In(lang))
		}
	}
	return out
}

func (f *SymptomFlow) Reset() {
	f.index = 0
	f.answers = nil
}

func (f *SymptomFlow) Status() domain.FlowStatus {
	state := domain.FlowAsking
	if f.Finished() {
		state = domain.FlowFinished
	}
	return domain.FlowStatus{
		State:         state,
		QuestionIndex: f.index,
		Total:         len(f.questions),
		Answers:       f.Answers(),
	}
}
