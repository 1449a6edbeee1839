package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_operations_total",
			Help: "Total number of calculator operations by operator and status",
		},
		[]string{"operation", "status"},
	)

	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calculator_sessions_active",
			Help: "Number of open calculator sessions",
		},
	)
)
