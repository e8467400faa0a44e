package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_CountsReplies(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveReply("keyword", "en")
	c.ObserveReply("keyword", "en")
	c.ObserveReply("fallback", "hi")
	c.ObserveAI("medicine_info", "ok")
	c.SetActiveSessions(3)
	c.FlowCompleted()

	if got := testutil.ToFloat64(c.replies.WithLabelValues("keyword", "en")); got != 2 {
		t.Fatalf("expected 2 keyword replies, got %v", got)
	}
	if got := testutil.ToFloat64(c.aiRequests.WithLabelValues("medicine_info", "ok")); got != 1 {
		t.Fatalf("expected 1 ai request, got %v", got)
	}
	if got := testutil.ToFloat64(c.sessionsActive); got != 3 {
		t.Fatalf("expected 3 active sessions, got %v", got)
	}
	if got := testutil.ToFloat64(c.flowsCompleted); got != 1 {
		t.Fatalf("expected 1 completed flow, got %v", got)
	}
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveReply("keyword", "en")
	c.ObserveAI("x", "error")
	c.SetActiveSessions(1)
	c.FlowCompleted()
}
