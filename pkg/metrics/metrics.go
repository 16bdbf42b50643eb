package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PersistTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "persist_total", Help: "Number of collection persist attempts by key."},
		[]string{"collection"},
	)
	PersistFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "persist_failures_total", Help: "Number of failed collection persists by key."},
		[]string{"collection"},
	)
	DecodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "decode_failures_total", Help: "Number of hydrate decode failures by key."},
		[]string{"collection"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studydesk", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PersistTotal)
	reg.MustRegister(PersistFailures)
	reg.MustRegister(DecodeFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
