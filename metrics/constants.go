// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "movie_koth_http_requests_total"
	MetricNameHTTPRequestDuration  = "movie_koth_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "movie_koth_http_requests_in_flight"
	MetricNameSessionsCreated      = "movie_koth_sessions_created_total"
	MetricNameSessionsActive       = "movie_koth_sessions_active"
	MetricNameIngestFailures       = "movie_koth_ingest_failures_total"
	MetricNameVotesCast            = "movie_koth_votes_cast_total"
	MetricNameFaceOffs             = "movie_koth_faceoffs_total"
	MetricNameSubmissions          = "movie_koth_submissions_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextSessionsCreated      = "Total number of ranking sessions started"
	HelpTextSessionsActive       = "Number of sessions held in memory"
	HelpTextIngestFailures       = "Total number of failed item loads"
	HelpTextVotesCast            = "Total number of match decisions, by winner"
	HelpTextFaceOffs             = "Total number of face-off decisions, by winner"
	HelpTextSubmissions          = "Total number of submissions, by outcome"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelWinner  = "winner"
	LabelOutcome = "outcome"
)

// Submission outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeDuplicate = "duplicate"
	OutcomeFailure   = "failure"
)

// HTTPLatencyBuckets for request durations
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
