package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"contact_email":  "must be a valid email address",
	"egyptian_phone": "must be a valid Egyptian mobile number",
	"oneof":          "must be one of: %s",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
}

// Validation tags whose message carries the tag parameter
var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientLoginFailed                   = "An error occurred during login"
	ErrClientRegistrationFailed            = "registration failed, please try again"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "please login to continue"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientFailedToLoad                  = "failed to load %s"
	ErrClientBookingNotFound               = "booking not found or already expired"
	ErrClientBookingSubmitted              = "booking is already confirmed, start a new one"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "validation failed"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	ErrDevAuthSigningMethod      = "unexpected signing method"
	ErrDevAuthTokenInvalid       = "invalid client token"
	ErrDevAuthInvalidCredentials = "backend rejected credentials"
	ErrDevAuthLoginTransport     = "login request to backend failed"
	ErrDevAuthNotAuthenticated   = "no session for protected resource"
	ErrDevAuthPermissionDenied   = "permission denied"
	ErrDevAuthTooManyAttempts    = "login attempts exceeded for client %s"

	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevBackendUnexpectedBody = "unexpected %s response body from backend"
	ErrDevBackendStatus         = "backend %s responded with status %q"

	ErrDevSessionSlotRead    = "failed to read session slot %s"
	ErrDevSessionSlotWrite   = "failed to write session slot %s"
	ErrDevSessionSlotDelete  = "failed to delete session slot %s"
	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevMongoFindDocument  = "failed when do find document on database"
	ErrDevMongoUpsertDoc     = "failed to upsert document into database"
	ErrDevMongoDeleteDoc     = "failed when do delete document on database"
	ErrDevRabbitMQPublish    = "failed to publish message to queue %s"
	ErrDevBookingNotFound    = "booking wizard %s not found for client"
	ErrDevBookingInvalidStep = "invalid booking step %q"
	ErrDevBookingSubmitted   = "booking wizard %s is already submitted"
	ErrDevBookingReference   = "failed to generate booking reference"
)
