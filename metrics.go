package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mosp_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mosp_http_request_duration_seconds",
		Help:    "HTTP request duration by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mosp_search_duration_seconds",
		Help:    "Duration of one-to-all searches by profile",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}, []string{"profile"})

	searchLabels = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mosp_search_settled_labels",
		Help:    "Labels settled per search by profile",
		Buckets: prometheus.ExponentialBuckets(10, 4, 10),
	}, []string{"profile"})

	searchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mosp_search_errors_total",
		Help: "Searches ending with an error by profile",
	}, []string{"profile"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mosp_cache_lookups_total",
		Help: "Result cache lookups by result (hit, miss, error)",
	}, []string{"result"})
)
