package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingClientIDKey      = "client_id"
	LoggingUserIDKey        = "user_id"
	LoggingRoleKey          = "role"
	LoggingEmailKey         = "email"
	LoggingPathKey          = "path"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingDecisionKey      = "decision"
	LoggingRouteKey         = "route"
	LoggingSlotKey          = "slot"
	LoggingBookingIDKey     = "booking_id"
	LoggingBookingStepKey   = "step"
	LoggingBookingRefKey    = "booking_reference"
	LoggingDirectoryKindKey = "directory_kind"
	LoggingEventKey         = "event"
)
