package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fraud_pipeline_runs_total",
			Help: "Total number of complaint pipeline executions",
		},
	)

	stageFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fraud_pipeline_stage_fallbacks_total",
			Help: "Stage executions that used their local fallback path",
		},
		[]string{"stage"},
	)
)
