package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var errNoJSONObject = errors.New("no json object in model output")

var (
	fenceStart = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// stripCodeFences quita BOM y fences ```json ... ``` de la salida del modelo.
func stripCodeFences(raw string) string {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
	if s == "" {
		return ""
	}
	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// firstJSONObject devuelve el primer objeto {...} balanceado, ignorando llaves dentro de strings.
func firstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(input); i++ {
		ch := input[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}

// decodeModelJSON limpia la respuesta del modelo y decodifica el primer objeto JSON en dst.
func decodeModelJSON(raw string, dst any) error {
	obj := firstJSONObject(stripCodeFences(raw))
	if obj == "" {
		return errNoJSONObject
	}
	return json.Unmarshal([]byte(obj), dst)
}
