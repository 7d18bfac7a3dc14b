// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

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

// Session Metrics
var (
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	IngestFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIngestFailures,
			Help: HelpTextIngestFailures,
		},
	)
)

// Ranking Metrics
var (
	VotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVotesCast,
			Help: HelpTextVotesCast,
		},
		[]string{LabelWinner},
	)

	FaceOffs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFaceOffs,
			Help: HelpTextFaceOffs,
		},
		[]string{LabelWinner},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSubmissions,
			Help: HelpTextSubmissions,
		},
		[]string{LabelOutcome},
	)
)
