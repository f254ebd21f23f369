package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_ID_KEY            ContextKey = "client_id"
	CONTEXT_SESSION_STORE_KEY        ContextKey = "session_store"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	SessionDriverRedis = "redis"
	SessionDriverMongo = "mongo"
)

const (
	ClientTokenClaimClientID = "client_id"
	ClientTokenClaimExpiry   = "exp"
)

const (
	QueryParamRedirect = "redirect"
	DefaultAfterLogin  = "/dashboard"
	PathLogin          = "/login"
)

const (
	MongoCollectionSessionSlots = "session_slots"
)

const (
	BackendStatusSuccess = "success"
	BackendUserActive    = "active"
)

const (
	AuthEventLoginSucceeded = "login_succeeded"
	AuthEventLoginFailed    = "login_failed"
	AuthEventLogout         = "logout"
)

const (
	RegisterAttachmentLicense              = "license"
	RegisterAttachmentSyndicateCertificate = "syndicate_certificate"
	RegisterAttachmentPracticeLicense      = "practice_license"
)

var RegisterAttachmentFields = []string{
	RegisterAttachmentLicense,
	RegisterAttachmentSyndicateCertificate,
	RegisterAttachmentPracticeLicense,
}
