package domain

import "strings"

// Language identifica un idioma soportado por el asistente.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageTelugu  Language = "te"
)

// SupportedLanguages lista los idiomas en el orden en que se ofrecen al usuario.
var SupportedLanguages = []Language{LanguageEnglish, LanguageHindi, LanguageTelugu}

// ParseLanguage normaliza un código de idioma y reporta si está soportado.
func ParseLanguage(code string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	switch lang {
	case LanguageEnglish, LanguageHindi, LanguageTelugu:
		return lang, true
	default:
		return "", false
	}
}

// LocalizedText guarda un texto en cada idioma soportado.
type LocalizedText struct {
	En string `json:"en"`
	Hi string `json:"hi"`
	Te string `json:"te"`
}

// In devuelve el texto para lang; idiomas desconocidos caen a inglés.
func (t LocalizedText) In(lang Language) string {
	switch lang {
	case LanguageHindi:
		return t.Hi
	case LanguageTelugu:
		return t.Te
	default:
		return t.En
	}
}
