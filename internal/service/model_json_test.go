package service

import "testing"

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}```":       `{"a":1}`,
		"\uFEFF{\"a\":1}":         `{"a":1}`,
		"   ":                     "",
		"plain text":              "plain text",
	}
	for in, want := range cases {
		if got := stripCodeFences(in); got != want {
			t.Fatalf("stripCodeFences(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestFirstJSONObject(t *testing.T) {
	t.Run("skips prose and nested braces", func(t *testing.T) {
		in := `Here you go: {"a":{"b":"}"},"c":[1]} trailing {"x":1}`
		want := `{"a":{"b":"}"},"c":[1]}`
		if got := firstJSONObject(in); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
	t.Run("escaped quotes", func(t *testing.T) {
		in := `{"a":"say \"hi\" {"}`
		if got := firstJSONObject(in); got != in {
			t.Fatalf("expected whole object, got %q", got)
		}
	})
	t.Run("unbalanced", func(t *testing.T) {
		if got := firstJSONObject(`{"a":1`); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
		if got := firstJSONObject("no json"); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})
}

func TestDecodeModelJSON(t *testing.T) {
	var out struct {
		Summary string `json:"summary"`
	}
	if err := decodeModelJSON("```json\n{\"summary\":\"ok\"}\n```", &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Summary != "ok" {
		t.Fatalf("expected ok, got %q", out.Summary)
	}
	if err := decodeModelJSON("sorry, I cannot help", &out); err == nil {
		t.Fatalf("expected error for non json output")
	}
	if err := decodeModelJSON(`{"summary": 3}`, &out); err == nil {
		t.Fatalf("expected type error")
	}
}
