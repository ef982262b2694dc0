package grouping

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the prometheus metrics for the partitioning engine
type Metrics struct {
	Analyses        prometheus.Counter
	BoardsEvaluated prometheus.Counter
	BoardsPlaced    prometheus.Counter
	BoardsSkipped   *prometheus.CounterVec

	ImpossibleBoards prometheus.Gauge
	VotingGroups     prometheus.Gauge
	GroupSize        prometheus.Histogram

	TotalSeats   prometheus.Gauge
	PresentCount prometheus.Gauge
	QuorumLimit  prometheus.Gauge

	AnalysisDuration prometheus.Histogram
}

// NewMetrics creates and registers the engine metrics
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Analyses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "javcheck_analyses_total",
			Help: "Total number of voting group analyses",
		}),
		BoardsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "javcheck_boards_evaluated_total",
			Help: "Total number of candidate boards evaluated",
		}),
		BoardsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "javcheck_boards_placed_total",
			Help: "Total number of boards placed in a voting group",
		}),
		BoardsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "javcheck_boards_skipped_total",
				Help: "Candidate IDs the engine did not consume",
			},
			[]string{"reason"},
		),

		ImpossibleBoards: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "javcheck_impossible_boards",
			Help: "Boards that cannot be decided in the latest analysis",
		}),
		VotingGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "javcheck_voting_groups",
			Help: "Voting groups in the latest analysis",
		}),
		GroupSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "javcheck_voting_group_size_boards",
			Help:    "Number of boards per voting group",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),

		TotalSeats: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "javcheck_assembly_seats",
			Help: "Seats in the assembly in the latest analysis",
		}),
		PresentCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "javcheck_assembly_present",
			Help: "Present assembly members in the latest analysis",
		}),
		QuorumLimit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "javcheck_quorum_limit",
			Help: "Eligible voters required for a decision in the latest analysis",
		}),

		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "javcheck_analysis_duration_seconds",
			Help:    "Time spent partitioning boards in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	reg.MustRegister(
		m.Analyses,
		m.BoardsEvaluated,
		m.BoardsPlaced,
		m.BoardsSkipped,
		m.ImpossibleBoards,
		m.VotingGroups,
		m.GroupSize,
		m.TotalSeats,
		m.PresentCount,
		m.QuorumLimit,
		m.AnalysisDuration,
	)

	return m
}

// RecordAnalysis records the outcome of one analysis
func (m *Metrics) RecordAnalysis(res *Result, duration float64) {
	m.Analyses.Inc()
	m.BoardsEvaluated.Add(float64(res.Placed() + len(res.Impossible)))
	m.BoardsPlaced.Add(float64(res.Placed()))
	for _, s := range res.Skipped {
		m.BoardsSkipped.WithLabelValues(string(s.Reason)).Inc()
	}

	m.ImpossibleBoards.Set(float64(len(res.Impossible)))
	m.VotingGroups.Set(float64(len(res.Groups)))
	for _, g := range res.Groups {
		m.GroupSize.Observe(float64(len(g.Boards)))
	}

	m.TotalSeats.Set(float64(res.TotalSeats))
	m.PresentCount.Set(float64(res.PresentCount))
	m.QuorumLimit.Set(float64(res.QuorumLimit))

	m.AnalysisDuration.Observe(duration)
}
