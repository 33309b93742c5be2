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
	MetricNameStreamClients      = "stream_clients_connected"
	MetricNameStreamDropped      = "stream_events_dropped_total"
)

// Game metric names
const (
	MetricNameSpinsTotal           = "slot_spins_total"
	MetricNameSpinsRejected        = "slot_spins_rejected_total"
	MetricNameAmountWagered        = "slot_amount_wagered_total"
	MetricNameAmountPaid           = "slot_amount_paid_total"
	MetricNameSpinDuration         = "slot_spin_duration_seconds"
	MetricNameJackpotCurrent       = "slot_jackpot_current"
	MetricNameJackpotHits          = "slot_jackpot_hits_total"
	MetricNameAutoplayActive       = "slot_autoplay_sessions_active"
	MetricNameAutoplayStopped      = "slot_autoplay_sessions_stopped_total"
	MetricNameDailyBonusesClaimed  = "slot_daily_bonuses_claimed_total"
	MetricNameDailyBonusAmountPaid = "slot_daily_bonus_amount_paid_total"

	MetricNameAchievementsUnlocked   = "slot_achievements_unlocked_total"
	MetricNameAchievementRewardsPaid = "slot_achievement_rewards_paid_total"
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
	HelpTextStreamClients      = "Number of live event stream clients connected"
	HelpTextStreamDropped      = "Total number of live stream events dropped on full buffers"
)

// Game metric help text
const (
	HelpTextSpinsTotal           = "Total number of resolved spins by match kind"
	HelpTextSpinsRejected        = "Total number of spins rejected before resolution"
	HelpTextAmountWagered        = "Total amount wagered"
	HelpTextAmountPaid           = "Total amount paid out, including jackpots"
	HelpTextSpinDuration         = "Time to resolve and commit a spin in seconds"
	HelpTextJackpotCurrent       = "Current progressive jackpot value"
	HelpTextJackpotHits          = "Total number of jackpot hits"
	HelpTextAutoplayActive       = "Number of autoplay sessions currently running"
	HelpTextAutoplayStopped      = "Total number of autoplay sessions stopped by reason"
	HelpTextDailyBonusesClaimed  = "Total number of daily login bonuses claimed"
	HelpTextDailyBonusAmountPaid = "Total amount paid as daily login bonus"

	HelpTextAchievementsUnlocked   = "Total number of achievements unlocked by achievement"
	HelpTextAchievementRewardsPaid = "Total amount paid as achievement rewards"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelSource = "source"
	LabelReason = "reason"
	LabelTable  = "table"

	LabelAchievement = "achievement"
)

// Spin source label values
const (
	SourceManual   = "manual"
	SourceAutoplay = "autoplay"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SpinLatencyBuckets covers in-memory resolution (sub-millisecond) up to a slow database commit
var SpinLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
