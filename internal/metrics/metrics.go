package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Score save outcomes
const (
	OutcomeSaved    = "saved"
	OutcomeInvalid  = "invalid"
	OutcomeLocked   = "locked"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var SessionsCreatedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "vibetracker_sessions_created_total",
		Help: "Number of event sessions created",
	},
)

var ScoreSavesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vibetracker_score_saves_total",
	Help: "Number of score save attempts by outcome",
}, []string{"outcome"})

var BoardBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "vibetracker_board_build_duration_seconds",
	Help:    "Time spent loading, aggregating and ranking a leaderboard",
	Buckets: prometheus.DefBuckets,
})

var BoardTeamsHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "vibetracker_board_teams",
	Help:    "Number of teams on a built leaderboard",
	Buckets: prometheus.LinearBuckets(0, 5, 6),
})

var BoardBuildErrorCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "vibetracker_board_build_errors_total",
		Help: "Number of leaderboard builds that failed",
	},
)
