package http

import (
	"net/http"
	"testing"

	"swasthya-ai/internal/domain"
)

func TestReferenceHandler_QuickRepliesAndQuestions(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := performRequest(s.router, http.MethodGet, "/reference/quick-replies?lang=hi", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var replies struct {
		QuickReplies []string `json:"quick_replies"`
	}
	decodeBody(t, rec, &replies)
	if len(replies.QuickReplies) != 5 || replies.QuickReplies[0] != "मलेरिया के लक्षण" {
		t.Fatalf("unexpected quick replies %v", replies.QuickReplies)
	}

	rec = performRequest(s.router, http.MethodGet, "/reference/questions?lang=te", nil, "")
	var questions struct {
		Questions []localizedQuestion `json:"questions"`
	}
	decodeBody(t, rec, &questions)
	if len(questions.Questions) != 3 || questions.Questions[0].Options[0].Text != "జ్వరం" {
		t.Fatalf("unexpected questions %+v", questions.Questions)
	}

	rec = performRequest(s.router, http.MethodGet, "/reference/questions?lang=xx", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown language, got %d", rec.Code)
	}
}

func TestReferenceHandler_Alerts(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := performRequest(s.router, http.MethodGet, "/reference/alerts", nil, "")
	var alerts struct {
		Alerts []domain.OutbreakAlert `json:"alerts"`
	}
	decodeBody(t, rec, &alerts)
	if len(alerts.Alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts.Alerts))
	}
	for i := 1; i < len(alerts.Alerts); i++ {
		if alerts.Alerts[i].Date > alerts.Alerts[i-1].Date {
			t.Fatalf("alerts must be newest first")
		}
	}

	rec = performRequest(s.router, http.MethodGet, "/reference/alerts/active", nil, "")
	var active struct {
		Alert domain.OutbreakAlert `json:"alert"`
	}
	decodeBody(t, rec, &active)
	if active.Alert.Date != alerts.Alerts[0].Date {
		t.Fatalf("active alert should be the newest, got %+v", active.Alert)
	}
}

func TestReferenceHandler_StaticTables(t *testing.T) {
	s := newTestServer(t, nil, nil)
	for _, path := range []string{"/reference/vaccinations", "/reference/diseases", "/health"} {
		rec := performRequest(s.router, http.MethodGet, path, nil, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
