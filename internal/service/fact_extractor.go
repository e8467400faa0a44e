package service

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	namePattern = regexp.MustCompile(`(?i)\b(?:my name is|i am)\s+([a-z][a-z\s]*)`)
	agePattern  = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|months?)\s*old`)
)

// Facts son los datos personales detectados en un mensaje libre.
type Facts struct {
	Name string
	Age  *int
}

// HasAny indica si se detectó algún dato.
func (f Facts) HasAny() bool {
	return f.Name != "" || f.Age != nil
}

// FactExtractor detecta nombre y edad con patrones fijos. No tiene estado.
type FactExtractor struct{}

// Extract aplica ambos patrones; pueden dispararse los dos sobre el mismo texto.
// El nombre conserva la capitalización original del mensaje.
func (FactExtractor) Extract(text string) Facts {
	var facts Facts
	if m := namePattern.FindStringSubmatch(text); m != nil {
		facts.Name = strings.TrimSpace(m[1])
	}
	if m := agePattern.FindStringSubmatch(text); m != nil {
		// Un número que no cabe en int se ignora.
		if age, err := strconv.Atoi(m[1]); err == nil {
			facts.Age = &age
		}
	}
	return facts
}
