package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector agrupa los contadores del asistente. Un *Collector nil es válido y no registra nada.
type Collector struct {
	replies        *prometheus.CounterVec
	aiRequests     *prometheus.CounterVec
	sessionsActive prometheus.Gauge
	flowsCompleted prometheus.Counter
}

// New registra los contadores en reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		replies: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swasthya",
			Name:      "replies_total",
			Help:      "Bot replies by resolver branch and language.",
		}, []string{"branch", "language"}),
		aiRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swasthya",
			Name:      "ai_requests_total",
			Help:      "AI collaborator calls by service and outcome.",
		}, []string{"service", "outcome"}),
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "swasthya",
			Name:      "sessions_active",
			Help:      "Chat sessions currently held in memory.",
		}),
		flowsCompleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "swasthya",
			Name:      "symptom_flows_completed_total",
			Help:      "Guided symptom questionnaires answered to the end.",
		}),
	}
}

func (c *Collector) ObserveReply(branch, language string) {
	if c == nil {
		return
	}
	c.replies.WithLabelValues(branch, language).Inc()
}

// ObserveAI cuenta una llamada a un colaborador de IA; outcome es ok, fallback o error.
func (c *Collector) ObserveAI(service, outcome string) {
	if c == nil {
		return
	}
	c.aiRequests.WithLabelValues(service, outcome).Inc()
}

func (c *Collector) SetActiveSessions(n int) {
	if c == nil {
		return
	}
	c.sessionsActive.Set(float64(n))
}

func (c *Collector) FlowCompleted() {
	if c == nil {
		return
	}
	c.flowsCompleted.Inc()
}

// AIRequests expone el contador de un servicio y resultado; útil en tests.
func (c *Collector) AIRequests(service, outcome string) prometheus.Counter {
	return c.aiRequests.WithLabelValues(service, outcome)
}
