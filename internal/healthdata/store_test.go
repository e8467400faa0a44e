package healthdata

import (
	"strings"
	"testing"

	"swasthya-ai/internal/domain"
)

func TestDefaultStore_TablesAreLocalized(t *testing.T) {
	store := Default()

	for _, lang := range domain.SupportedLanguages {
		for i, kr := range store.Keywords {
			if strings.TrimSpace(kr.Response.In(lang)) == "" {
				t.Fatalf("keyword entry %d missing %s text", i, lang)
			}
		}
		for _, q := range store.Questions {
			if strings.TrimSpace(q.Prompt.In(lang)) == "" {
				t.Fatalf("question %s missing %s prompt", q.ID, lang)
			}
			for _, opt := range q.Options {
				if strings.TrimSpace(opt.Text.In(lang)) == "" {
					t.Fatalf("option %s missing %s text", opt.ID, lang)
				}
			}
		}
		if Fallback(lang) == "" || Welcome(lang) == "" {
			t.Fatalf("missing fallback/welcome for %s", lang)
		}
	}
}

func TestDefaultStore_KeywordsAreLowercase(t *testing.T) {
	for _, kr := range Default().Keywords {
		for _, kw := range kr.Keywords {
			if kw != strings.ToLower(kw) {
				t.Fatalf("keyword %q must be lowercase", kw)
			}
		}
	}
}

func TestVaccinesFor(t *testing.T) {
	store := Default()

	birth := store.VaccinesFor(domain.AgeBucketBirth)
	if len(birth) != 2 || birth[0].Vaccine != "BCG" || birth[1].Vaccine != "Hepatitis B" {
		t.Fatalf("unexpected birth vaccines: %+v", birth)
	}

	child := store.VaccinesFor(domain.AgeBucketChild)
	var names []string
	for _, v := range child {
		names = append(names, v.Vaccine)
	}
	if got := strings.Join(names, ","); got != "Measles,MMR,Chickenpox,Typhoid" {
		t.Fatalf("unexpected child vaccines: %s", got)
	}
}

func TestRecentAlerts(t *testing.T) {
	store := &Store{Alerts: []domain.OutbreakAlert{
		{Disease: "Old", Date: "2023-12-01"},
		{Disease: "Newest", Date: "2024-02-01"},
		{Disease: "Middle", Date: "2024-01-01"},
	}}

	recent := store.RecentAlerts(2)
	if len(recent) != 2 || recent[0].Disease != "Newest" || recent[1].Disease != "Middle" {
		t.Fatalf("unexpected order: %+v", recent)
	}
	if got := store.RecentAlerts(10); len(got) != 3 {
		t.Fatalf("expected all alerts when n exceeds table, got %d", len(got))
	}
	if got := store.RecentAlerts(0); got != nil {
		t.Fatalf("expected nil for n=0, got %+v", got)
	}
	if store.Alerts[0].Disease != "Old" {
		t.Fatalf("table must not be reordered in place")
	}

	active, ok := Default().ActiveAlert()
	if !ok || active.Disease != "Dengue" {
		t.Fatalf("expected Dengue banner, got %+v", active)
	}
}

func TestMessageTemplates(t *testing.T) {
	vaccines := []domain.VaccinationEntry{{Vaccine: "BCG", Age: "At birth"}, {Vaccine: "Typhoid", Age: "2 years"}}
	got := VaccinationAdvice(domain.LanguageEnglish, 2, vaccines)
	want := "Based on the age 2, here are important vaccinations: BCG (At birth), Typhoid (2 years). Please consult your pediatrician for the complete schedule."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	hi := VaccinationAdvice(domain.LanguageHindi, 2, vaccines)
	if !strings.HasPrefix(hi, "2 वर्ष") || !strings.Contains(hi, "BCG (At birth)") {
		t.Fatalf("unexpected hindi advice: %q", hi)
	}

	summary := AlertsSummary(domain.LanguageTelugu, []domain.OutbreakAlert{{Disease: "Dengue", Location: "Guntur", Description: "x"}})
	if summary != "ప్రస్తుత ఆరోగ్య హెచ్చరికలు:\nDengue in Guntur - x" {
		t.Fatalf("unexpected summary: %q", summary)
	}

	if got := Greeting(domain.LanguageEnglish, "Asha"); !strings.Contains(got, "Asha") {
		t.Fatalf("greeting must contain the name, got %q", got)
	}

	closing := Closing(domain.LanguageEnglish, []string{"Fever", "1-3 days"})
	if !strings.HasPrefix(closing, "Thank you for answering. You reported: Fever, 1-3 days.") {
		t.Fatalf("unexpected closing: %q", closing)
	}
	if Closing(domain.LanguageEnglish, nil) != Welcome(domain.LanguageEnglish) {
		t.Fatalf("closing without answers should fall back to welcome")
	}
}

func TestQuickRepliesIn(t *testing.T) {
	replies := Default().QuickRepliesIn(domain.LanguageHindi)
	if len(replies) != 5 || replies[0] != "मलेरिया के लक्षण" {
		t.Fatalf("unexpected quick replies: %+v", replies)
	}
}
