package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ActivitiesLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivitiesLogged,
			Help: HelpTextActivitiesLogged,
		},
		[]string{LabelActivity, LabelStat},
	)

	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelSource},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelSource},
	)

	StreaksExtended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreaksExtended,
			Help: HelpTextStreaksExtended,
		},
	)

	BossesDefeated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBossesDefeated,
			Help: HelpTextBossesDefeated,
		},
		[]string{LabelFinal},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelQuest},
	)

	StatPrestiges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatPrestiges,
			Help: HelpTextStatPrestiges,
		},
		[]string{LabelStat},
	)

	WorkerJobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobRuns,
			Help: HelpTextWorkerJobRuns,
		},
		[]string{LabelJob, LabelStatus},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameWorkerJobDuration,
			Help:    HelpTextWorkerJobDuration,
			Buckets: prometheus.ExponentialBuckets(0.005, 4, 8),
		},
		[]string{LabelJob},
	)

	CharactersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCharacters,
			Help: HelpTextCharacters,
		},
	)
)
