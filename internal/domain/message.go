package domain

import "time"

// Message es una entrada inmutable del historial de una sesión de chat.
type Message struct {
	ID        string    `json:"id"`
	Seq       int64     `json:"seq"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
	Options   []Option  `json:"options,omitempty"`
}
