package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Content generation
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "generations_total",
			Help:      "Total content generation requests",
		},
		[]string{"model", "provider", "content_type"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "generation_duration_seconds",
			Help:      "AI generation duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"model", "provider"},
	)

	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "generation_fallbacks_total",
			Help:      "Generations served from the local template bank",
		},
		[]string{"backend", "content_type"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	// Token counters
	TokensPromptTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "tokens_prompt_total",
			Help:      "Total prompt tokens consumed",
		},
		[]string{"model", "provider"},
	)

	TokensCompletionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "tokens_completion_total",
			Help:      "Total completion tokens generated",
		},
		[]string{"model", "provider"},
	)

	// Messenger bot
	BotMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "bot_messages_total",
			Help:      "Bot responses by answer source",
		},
		[]string{"source"},
	)

	LearningRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "learning_records_total",
			Help:      "Learning records persisted from sampled exchanges",
		},
	)

	// Scheduler
	ScheduledPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagepilot",
			Subsystem: "api",
			Name:      "scheduled_publish_total",
			Help:      "Scheduled content publish attempts",
		},
		[]string{"status"},
	)
)

// RecordRequest records an HTTP request.
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordGeneration records a completed content generation.
func RecordGeneration(model, provider, contentType string, durationSec float64) {
	GenerationsTotal.WithLabelValues(model, provider, contentType).Inc()
	GenerationDuration.WithLabelValues(model, provider).Observe(durationSec)
}

// RecordFallback records a generation served by the template bank.
func RecordFallback(backend, contentType string) {
	FallbacksTotal.WithLabelValues(backend, contentType).Inc()
}

// RecordProviderError records a provider error.
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}

// RecordTokens records token usage for a completion request.
func RecordTokens(model, provider string, promptTokens, completionTokens int) {
	TokensPromptTotal.WithLabelValues(model, provider).Add(float64(promptTokens))
	TokensCompletionTotal.WithLabelValues(model, provider).Add(float64(completionTokens))
}

// RecordBotMessage records a bot response by its answer source
// (learned, generated, fallback).
func RecordBotMessage(source string) {
	BotMessagesTotal.WithLabelValues(source).Inc()
}

// RecordScheduledPublish records one publish attempt outcome.
func RecordScheduledPublish(status string) {
	ScheduledPublishTotal.WithLabelValues(status).Inc()
}
