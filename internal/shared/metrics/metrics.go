package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	modelCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "model_calls_total",
		Help: "Total model calls by use case",
	}, []string{"use_case"})

	modelFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "model_failures_total",
		Help: "Total failed model calls or unparseable outputs by use case",
	}, []string{"use_case"})

	fallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "model_fallbacks_total",
		Help: "Total fallback values substituted by use case",
	}, []string{"use_case"})

	markAnalyzedFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "resume_mark_analyzed_failed_total",
		Help: "Total failed is_analyzed updates",
	})

	orchestrationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orchestration_duration_ms",
		Help:    "Orchestration duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	})
)

func init() {
	Registry.MustRegister(
		modelCalls,
		modelFailures,
		fallbacks,
		markAnalyzedFailed,
		orchestrationDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncModelCall counts an outbound model call for a use case.
func IncModelCall(useCase string) {
	modelCalls.WithLabelValues(useCase).Inc()
}

// IncModelFailure counts a failed model call or unparseable model output.
func IncModelFailure(useCase string) {
	modelFailures.WithLabelValues(useCase).Inc()
}

// IncFallback counts a fallback value substituted for model output.
func IncFallback(useCase string) {
	fallbacks.WithLabelValues(useCase).Inc()
}

// IncMarkAnalyzedFailed counts failed best-effort "is_analyzed" updates.
func IncMarkAnalyzedFailed() {
	markAnalyzedFailed.Inc()
}

// ObserveOrchestrationDurationMs records an orchestration duration in milliseconds.
func ObserveOrchestrationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	orchestrationDuration.Observe(value)
}

// ObserveSince records the time elapsed since start.
func ObserveSince(start time.Time) {
	ObserveOrchestrationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
}

// Handler exposes Registry in the Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
