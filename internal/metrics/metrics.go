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

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreamDropped,
			Help: HelpTextStreamDropped,
		},
	)
)

// Game Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelKind, LabelSource},
	)

	SpinsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsRejected,
			Help: HelpTextSpinsRejected,
		},
		[]string{LabelReason},
	)

	AmountWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
	)

	AmountPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaid,
			Help: HelpTextAmountPaid,
		},
	)

	SpinDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinDuration,
			Help:    HelpTextSpinDuration,
			Buckets: SpinLatencyBuckets,
		},
	)

	JackpotCurrent = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameJackpotCurrent,
			Help: HelpTextJackpotCurrent,
		},
		[]string{LabelTable},
	)

	JackpotHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJackpotHits,
			Help: HelpTextJackpotHits,
		},
	)

	AutoplayActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAutoplayActive,
			Help: HelpTextAutoplayActive,
		},
	)

	AutoplayStopped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutoplayStopped,
			Help: HelpTextAutoplayStopped,
		},
		[]string{LabelReason},
	)

	DailyBonusesClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyBonusesClaimed,
			Help: HelpTextDailyBonusesClaimed,
		},
	)

	DailyBonusAmountPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyBonusAmountPaid,
			Help: HelpTextDailyBonusAmountPaid,
		},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	AchievementRewardsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAchievementRewardsPaid,
			Help: HelpTextAchievementRewardsPaid,
		},
	)
)
