package stats

import "github.com/prometheus/client_golang/prometheus"

// Prometheus implements Counters on top of prometheus/client_golang
// counter vectors, labeled by message kind, the way the rest of the
// corpus wires its metrics (dittofs's pkg/metrics registers vectors
// against a caller-supplied registry rather than the global default).
type Prometheus struct {
	messages *prometheus.CounterVec
	bytes    *prometheus.CounterVec
}

// NewPrometheus registers and returns a Prometheus counters sink on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenoh",
			Subsystem: "unicast_rx",
			Name:      "messages_total",
			Help:      "Application messages delivered to the receive callback, by kind.",
		}, []string{"kind"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenoh",
			Subsystem: "unicast_rx",
			Name:      "payload_bytes_total",
			Help:      "Application payload bytes delivered to the receive callback, by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(p.messages, p.bytes)
	return p
}

func (p *Prometheus) IncRequest(payloadBytes int) {
	p.messages.WithLabelValues("request").Inc()
	p.bytes.WithLabelValues("request").Add(float64(payloadBytes))
}

func (p *Prometheus) IncOam(payloadBytes int) {
	p.messages.WithLabelValues("oam").Inc()
	p.bytes.WithLabelValues("oam").Add(float64(payloadBytes))
}
