package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	LoginSuccessMessage         = "successfully login"
	LogoutSuccessMessage        = "successfully logout"
	RegisterSuccessMessage      = "registration submitted successfully"
	GetSessionSuccessMessage    = "get session successfully"
	GetNavigationSuccessMessage = "get navigation successfully"
	GetDirectorySuccessMessage  = "get %s successfully"
	GetPageSuccessMessage       = "page rendered successfully"
	BookingStartedMessage       = "booking started"
	BookingStateMessage         = "get booking successfully"
	BookingUpdatedMessage       = "booking step updated"
	BookingTransitionMessage    = "booking transition applied"
	BookingTransitionRefused    = "booking transition refused"
	BookingConfirmedMessage     = "booking confirmed"
	BookingAbandonedMessage     = "booking abandoned"
	UnauthorizedPageMessage     = "you are not allowed to view this page"
	NotFoundPageMessage         = "page not found"
)
