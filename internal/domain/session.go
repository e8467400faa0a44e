package domain

import "time"

type FlowState string

const (
	FlowAsking   FlowState = "asking"
	FlowFinished FlowState = "finished"
)

// FlowStatus resume el avance del cuestionario guiado.
type FlowStatus struct {
	State         FlowState       `json:"state"`
	QuestionIndex int             `json:"question_index"`
	Total         int             `json:"total"`
	Answers       []SymptomAnswer `json:"answers"`
}

// SessionState es una copia inmutable del estado de una sesión de chat.
type SessionState struct {
	ID        string      `json:"id"`
	Language  Language    `json:"language"`
	Flow      FlowStatus  `json:"flow"`
	Messages  []Message   `json:"messages"`
	Profile   UserProfile `json:"profile"`
	Composing bool        `json:"composing"`
	CreatedAt time.Time   `json:"created_at"`
}
