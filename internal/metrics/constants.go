package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Background job metric names
const (
	MetricNameWorkerJobRuns     = "worker_job_runs_total"
	MetricNameWorkerJobDuration = "worker_job_duration_seconds"
)

// Business metric names
const (
	MetricNameActivitiesLogged = "activities_logged_total"
	MetricNameXPAwarded        = "xp_awarded_total"
	MetricNameLevelUps         = "level_ups_total"
	MetricNameStreaksExtended  = "streaks_extended_total"
	MetricNameBossesDefeated   = "bosses_defeated_total"
	MetricNameQuestsCompleted  = "quests_completed_total"
	MetricNameStatPrestiges    = "stat_prestiges_total"
	MetricNameCharacters       = "characters_created_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Background job metric help text
const (
	HelpTextWorkerJobRuns     = "Background job runs by outcome"
	HelpTextWorkerJobDuration = "Background job run time in seconds"
)

// Business metric help text
const (
	HelpTextActivitiesLogged = "Total number of activities logged"
	HelpTextXPAwarded        = "Total XP awarded"
	HelpTextLevelUps         = "Total number of level ups"
	HelpTextStreaksExtended  = "Total number of streak extensions"
	HelpTextBossesDefeated   = "Total number of bosses defeated"
	HelpTextQuestsCompleted  = "Total number of special quests completed"
	HelpTextStatPrestiges    = "Total number of stat prestige resets"
	HelpTextCharacters       = "Total number of characters created"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelActivity = "activity"
	LabelStat     = "stat"
	LabelSource   = "source"
	LabelQuest    = "quest"
	LabelFinal    = "final"
	LabelJob      = "job"
)

// Background job outcomes
const (
	JobStatusOK      = "ok"
	JobStatusError   = "error"
	JobStatusSkipped = "skipped"
)

// XP sources
const (
	SourceActivity = "activity"
	SourceBoss     = "boss"
	SourceQuest    = "quest"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
