package service

import "testing"

func TestContainsAny(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		signals []string
		want    bool
	}{
		{"match", "dengue prevention tips", []string{"malaria", "dengue"}, true},
		{"substring inside word", "children", []string{"child"}, true},
		{"no match", "hello there", []string{"malaria"}, false},
		{"empty text", "", []string{"a"}, false},
		{"empty signal ignored", "abc", []string{""}, false},
		{"native script", "मलेरिया के लक्षण", []string{"लक्षण"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := containsAny(tc.text, tc.signals...); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	if got := normalizeText("  Tell Me About DENGUE  "); got != "tell me about dengue" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
