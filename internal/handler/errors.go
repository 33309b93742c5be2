package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidUserID         = "Invalid user_id"
	ErrMsgInvalidLimit          = "limit must be a non-negative integer"
	ErrMsgInvalidSince          = "since must be an RFC3339 timestamp"
)

// Success messages for API responses
const (
	MsgMaintenanceUpdated = "Maintenance mode updated"
	MsgStatsReset         = "Statistics reset"
)

// Query parameter names
const (
	QueryParamUserID    = "user_id"
	QueryParamEventType = "type"
	QueryParamLimit     = "limit"
	QueryParamSince     = "since"
)
