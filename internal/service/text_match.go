package service

import "strings"

// normalizeText deja el texto en minúsculas y sin espacios extremos para comparar por subcadena.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsAny reporta si text contiene alguna de las señales; text ya debe venir normalizado.
func containsAny(text string, signals ...string) bool {
	if text == "" {
		return false
	}
	for _, s := range signals {
		if s != "" && strings.Contains(text, s) {
			return true
		}
	}
	return false
}
