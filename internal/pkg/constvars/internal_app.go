package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
	CONTEXT_USER_KEY       ContextKey = "authUser"
)

const (
	RolePatient  = "patient"
	RoleProvider = "provider"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

const (
	MongoCollectionProviders = "providers"
	MongoCollectionPatients  = "patients"
	MongoCollectionRequests  = "requests"
	MongoCollectionFavorites = "favorites"
)

const (
	EnumerationTypeIndividual   = "NPI-1"
	EnumerationTypeOrganization = "NPI-2"

	AddressPurposeLocation = "LOCATION"

	RegistryVersionParam = "2.1"
)

// Sentinels used whenever a normalized provider lacks source data.
const (
	SentinelUnknownProvider      = "Unknown Provider"
	SentinelUnknownPatient       = "Unknown Patient"
	SentinelSpecialtyMissing     = "Not specified"
	SentinelLocationNotAvailable = "Location not available"
)

const (
	SearchLimitDefault = 10
	SearchLimitMin     = 1
	SearchLimitMax     = 200
)

const (
	RedisAuthUserKeyFormat = "auth:user:%s"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

const (
	NotificationQueueDefault = "request_decision_notifications"
)
